package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/stylize/pkg/errors"
	"github.com/arthur-debert/stylize/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Defaults returns a Config holding only the embedded defaults.
func Defaults() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, yaml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return &Config{Koanf: k}, nil
}

// Load reads the embedded defaults and layers the user's config on top.
// An explicit path must exist; when path is empty the default location is
// used if present and skipped otherwise.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config")

	cfg, err := Defaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultPath()
		if path == "" {
			logger.Debug().Msg("No user config found, using defaults")
			return cfg, nil
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config %s", path).
			WithDetail("path", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Load(file.Provider(path), parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config %s", path).
			WithDetail("path", path)
	}
	cfg.path = path

	logger.Debug().Str("path", path).Msg("Loaded user config")
	return cfg, nil
}

// DefaultPath locates the user's beets config file. It returns "" when
// none exists.
func DefaultPath() string {
	if dir := os.Getenv("BEETSDIR"); dir != "" {
		path := filepath.Join(dir, "config.yaml")
		if _, err := os.Stat(path); err == nil {
			return path
		}
		return ""
	}

	path, err := xdg.SearchConfigFile(filepath.Join("beets", "config.yaml"))
	if err != nil {
		return ""
	}
	return path
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}
