package stylize

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Preview and audit beets path-format styling"
	MsgRenderShort     = "Render a path-format template with the styling functions"
	MsgColorsShort     = "List configured colors rendered in their own style"
	MsgCheckShort      = "Validate every configured color definition"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgColorItem     = "  %s%s  %s\n"
	MsgNoColors      = "No colors configured."
	MsgCheckPassed   = "All %d colors are valid.\n"
	MsgConfigSource  = "Config: %s\n"
	MsgConfigDefault = "Config: built-in defaults\n"

	// Error messages
	MsgErrLoadConfig    = "failed to load configuration: %w"
	MsgErrResolver      = "failed to set up styling: %w"
	MsgErrColorFlag     = "invalid --color: %w"
	MsgErrParseTemplate = "failed to parse template: %w"
	MsgErrRender        = "failed to render template: %w"
	MsgErrField         = "invalid field %q, expected key=value"
	MsgErrCheck         = "color configuration is invalid: %w"
	MsgErrNoCommand     = "no command specified"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Path to the beets config file (default: $BEETSDIR/config.yaml or ~/.config/beets/config.yaml)"
	MsgFlagColor   = "Color output: auto, always or never (default: $BEETS_COLOR or auto)"
	MsgFlagYAML    = "Print resolved definitions as YAML"
)

// Long messages (multi-line, embedded)
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimSpace(msgRenderExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
