package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/stylize/pkg/config"
	"github.com/arthur-debert/stylize/pkg/errors"
	"github.com/arthur-debert/stylize/pkg/logging"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Environment variables consulted by the resolver.
const (
	EnvOverride = "BEETS_COLOR"
	EnvNoColor  = "NO_COLOR"
	EnvNoLink   = "NO_LINK"
)

// Override forces or suppresses styling regardless of terminal detection.
type Override string

const (
	OverrideAuto   Override = "auto"
	OverrideAlways Override = "always"
	OverrideNever  Override = "never"
)

// Overrides lists the accepted override values.
var Overrides = []Override{OverrideAuto, OverrideAlways, OverrideNever}

// ParseOverride validates an override value.
func ParseOverride(s string) (Override, error) {
	for _, o := range Overrides {
		if string(o) == s {
			return o, nil
		}
	}
	return "", errors.Newf(errors.ErrInvalidOverride, "invalid color mode %q (want auto, always or never)", s).
		WithDetail("value", s)
}

// IsTerminal reports whether stdout is attached to a terminal.
var IsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Policy holds the inputs of the enablement decision.
type Policy struct {
	Store      config.Store
	Env        termenv.Environ
	IsTerminal func() bool
}

// IsEnabled reports whether styled output should be produced. With a nil
// override the value is read from BEETS_COLOR, defaulting to auto.
func (p Policy) IsEnabled(override *Override) (bool, error) {
	logger := logging.GetLogger("style")
	env := p.Env
	if env == nil {
		env = osEnviron{}
	}

	mode := OverrideAuto
	if override != nil {
		parsed, err := ParseOverride(string(*override))
		if err != nil {
			return false, err
		}
		mode = parsed
	} else if value, ok := lookupEnv(env, EnvOverride); ok {
		parsed, err := ParseOverride(value)
		if err != nil {
			return false, fmt.Errorf("%s: %w", EnvOverride, err)
		}
		mode = parsed
	}

	if !p.colorConfigured() {
		logger.Debug().Msg("Styling disabled by ui.color")
		return false, nil
	}
	if _, ok := lookupEnv(env, EnvNoColor); ok {
		logger.Debug().Msg("Styling disabled by NO_COLOR")
		return false, nil
	}

	switch mode {
	case OverrideNever:
		return false, nil
	case OverrideAlways:
		return true, nil
	default:
		isTerminal := p.IsTerminal
		if isTerminal == nil {
			isTerminal = IsTerminal
		}
		tty := isTerminal()
		logger.Debug().Bool("tty", tty).Msg("Styling decided by terminal detection")
		return tty, nil
	}
}

// colorConfigured reads ui.color, treating a missing or unreadable value
// as enabled.
func (p Policy) colorConfigured() bool {
	if p.Store == nil || !p.Store.Exists(config.KeyColor) {
		return true
	}
	value := p.Store.Get(config.KeyColor)
	enabled, ok := config.Truthy(value)
	if !ok {
		logger := logging.GetLogger("style")
		logger.Warn().
			Interface("value", value).
			Msg("ui.color is not a boolean, assuming enabled")
		return true
	}
	return enabled
}

// lookupEnv distinguishes unset variables from ones set to "".
func lookupEnv(env termenv.Environ, key string) (string, bool) {
	prefix := key + "="
	for _, kv := range env.Environ() {
		if strings.HasPrefix(kv, prefix) {
			return kv[len(prefix):], true
		}
	}
	return "", false
}

type osEnviron struct{}

func (osEnviron) Environ() []string { return os.Environ() }
func (osEnviron) Getenv(key string) string { return os.Getenv(key) }
