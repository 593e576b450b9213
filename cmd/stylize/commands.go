package stylize

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/arthur-debert/stylize/internal/version"
	"github.com/arthur-debert/stylize/pkg/config"
	"github.com/arthur-debert/stylize/pkg/logging"
	"github.com/arthur-debert/stylize/pkg/style"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbosity  int
	configPath string
	colorMode  string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:     "stylize",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf(MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", MsgFlagConfig)
	rootCmd.PersistentFlags().StringVar(&opts.colorMode, "color", "", MsgFlagColor)

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newRenderCmd(opts))
	rootCmd.AddCommand(newColorsCmd(opts))
	rootCmd.AddCommand(newCheckCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// newResolver loads configuration and builds the resolver the commands share.
func newResolver(opts *globalOptions) (*style.Resolver, *config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrLoadConfig, err)
	}

	var override *style.Override
	if opts.colorMode != "" {
		mode, err := style.ParseOverride(opts.colorMode)
		if err != nil {
			return nil, nil, fmt.Errorf(MsgErrColorFlag, err)
		}
		override = &mode
	}

	r, err := style.New(style.Options{Store: cfg, Override: override})
	if err != nil {
		return nil, nil, fmt.Errorf(MsgErrResolver, err)
	}
	return r, cfg, nil
}

func newRenderCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "render TEMPLATE [key=value...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.MinimumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd.render")
			defer logging.LogOperationStart(logger, "render")()

			fields, err := parseFields(args[1:])
			if err != nil {
				return err
			}

			r, _, err := newResolver(opts)
			if err != nil {
				return err
			}

			tmpl, err := template.New("format").Funcs(r.FuncMap()).Parse(args[0])
			if err != nil {
				return fmt.Errorf(MsgErrParseTemplate, err)
			}

			var buf bytes.Buffer
			if err := tmpl.Execute(&buf, fields); err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			logger.Info().
				Bool("enabled", r.Enabled()).
				Int("fields", len(fields)).
				Msg("Template rendered")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), buf.String())
			return err
		},
	}
}

func newColorsCmd(opts *globalOptions) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:     "colors",
		Short:   MsgColorsShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, cfg, err := newResolver(opts)
			if err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return fmt.Errorf(MsgErrCheck, err)
			}

			names := r.Names()
			resolved := make(map[string][]string, len(names))
			width := 0
			for _, name := range names {
				codes, _, _ := r.Resolve(name)
				resolved[name] = codes
				if len(name) > width {
					width = len(name)
				}
			}

			out := cmd.OutOrStdout()
			if asYAML {
				data, err := yaml.Marshal(resolved)
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			}

			if cfg.Path() != "" {
				fmt.Fprintf(out, MsgConfigSource, cfg.Path())
			} else {
				fmt.Fprint(out, MsgConfigDefault)
			}
			if len(names) == 0 {
				fmt.Fprintln(out, MsgNoColors)
				return nil
			}
			for _, name := range names {
				sample, err := r.Style(name, name)
				if err != nil {
					return err
				}
				// pad outside the escapes so columns line up
				pad := strings.Repeat(" ", width-len(name))
				fmt.Fprintf(out, MsgColorItem, sample, pad, strings.Join(resolved[name], " "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asYAML, "yaml", false, MsgFlagYAML)
	return cmd
}

func newCheckCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Short:   MsgCheckShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, _, err := newResolver(opts)
			if err != nil {
				return err
			}
			if err := r.Validate(); err != nil {
				return fmt.Errorf(MsgErrCheck, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), MsgCheckPassed, len(r.Names()))
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}

// parseFields turns key=value arguments into template data.
func parseFields(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf(MsgErrField, arg)
		}
		fields[key] = value
	}
	return fields, nil
}
