package style

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/stylize/pkg/ansi"
	"github.com/arthur-debert/stylize/pkg/config"
	"github.com/arthur-debert/stylize/pkg/errors"
	"github.com/arthur-debert/stylize/pkg/logging"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
)

// Options configures a Resolver. Only Store is required.
type Options struct {
	Store config.Store
	// Universe defaults to ansi.Default.
	Universe ansi.Universe
	// Env defaults to the process environment.
	Env termenv.Environ
	// IsTerminal defaults to the package-level IsTerminal check.
	IsTerminal func() bool
	// Override takes precedence over BEETS_COLOR.
	Override *Override
	// Enabled skips the enablement policy entirely.
	Enabled *bool
}

// resolution is a cached lookup; defined is false for names with no
// configuration entry.
type resolution struct {
	codes   []string
	defined bool
}

// Resolver resolves color names and formats template output.
type Resolver struct {
	store    config.Store
	universe ansi.Universe
	env      termenv.Environ
	enabled  bool
	logger   zerolog.Logger

	mu    sync.Mutex
	cache map[string]resolution
}

// New builds a Resolver and evaluates the enablement policy once.
func New(opts Options) (*Resolver, error) {
	if opts.Store == nil {
		return nil, errors.New(errors.ErrInvalidInput, "a configuration store is required")
	}

	r := &Resolver{
		store:    opts.Store,
		universe: opts.Universe,
		env:      opts.Env,
		logger:   logging.GetLogger("style"),
		cache:    make(map[string]resolution),
	}
	if r.universe == nil {
		r.universe = ansi.Default
	}
	if r.env == nil {
		r.env = osEnviron{}
	}

	if opts.Enabled != nil {
		r.enabled = *opts.Enabled
	} else {
		policy := Policy{Store: opts.Store, Env: r.env, IsTerminal: opts.IsTerminal}
		enabled, err := policy.IsEnabled(opts.Override)
		if err != nil {
			return nil, err
		}
		r.enabled = enabled
	}

	r.logger.Debug().Bool("enabled", r.enabled).Msg("Resolver created")
	return r, nil
}

// Enabled reports whether styled output is produced.
func (r *Resolver) Enabled() bool {
	return r.enabled
}

// Resolve returns the validated codes configured for a color. defined is
// false, with a nil error, when the color has no configuration entry.
func (r *Resolver) Resolve(name string) (codes []string, defined bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[name]; ok {
		r.logger.Trace().Str("color", name).Msg("Color cache hit")
		return clone(cached.codes), cached.defined, nil
	}

	// Names are single keys under ui.colors; a "." would address a nested path.
	// A null definition counts as absent.
	key := config.ColorKey(name)
	var raw interface{}
	if !strings.Contains(name, ".") && r.store.Exists(key) {
		raw = r.store.Get(key)
	}
	if raw == nil {
		r.logger.Debug().Str("color", name).Msg("Color not configured")
		r.cache[name] = resolution{}
		return nil, false, nil
	}

	codes, err = r.parse(name, raw)
	if err != nil {
		return nil, false, err
	}

	r.cache[name] = resolution{codes: codes, defined: true}
	r.logger.Debug().Str("color", name).Strs("codes", codes).Msg("Color resolved")
	return clone(codes), true, nil
}

// Clear forgets every resolved color so configuration changes take effect.
func (r *Resolver) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache = make(map[string]resolution)
	r.logger.Debug().Msg("Color cache cleared")
}

// parse normalizes a definition and validates every code in order.
func (r *Resolver) parse(name string, raw interface{}) ([]string, error) {
	var codes []string
	switch v := raw.(type) {
	case string:
		codes = strings.Fields(v)
	case []string:
		codes = clone(v)
	case []interface{}:
		codes = make([]string, 0, len(v))
		for _, item := range v {
			codes = append(codes, fmt.Sprint(item))
		}
	default:
		return nil, errors.Newf(errors.ErrUnknownColorCode, "color %s must be a string or a list of codes, got %T", name, raw).
			WithDetail("color", name)
	}

	for _, code := range codes {
		if !r.universe.Has(code) {
			return nil, errors.Newf(errors.ErrUnknownColorCode, "no such ANSI code %s", code).
				WithDetail("color", name).
				WithDetail("code", code)
		}
	}
	return codes, nil
}

func clone(codes []string) []string {
	if codes == nil {
		return nil
	}
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
