package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// Configuration keys read by the styling functions.
const (
	KeyColor  = "ui.color"
	KeyColors = "ui.colors"
)

// Store is the read-only view of configuration the resolver depends on.
// *koanf.Koanf satisfies it directly.
type Store interface {
	Exists(path string) bool
	Get(path string) interface{}
	MapKeys(path string) []string
}

// Config is a koanf instance plus the file it was loaded from, if any.
type Config struct {
	*koanf.Koanf

	path string
}

// Path returns the user config file that was loaded, or "" when only
// defaults are in effect.
func (c *Config) Path() string {
	return c.path
}

// ColorKey returns the configuration key holding the definition of a color.
func ColorKey(name string) string {
	return KeyColors + "." + name
}

// FromMap builds a Config from a flat or nested map without loading the
// embedded defaults. Keys may use "." as a path delimiter.
func FromMap(m map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load config map: %w", err)
	}
	return &Config{Koanf: k}, nil
}

// SetColors replaces every color definition with the given ones.
func (c *Config) SetColors(colors map[string]interface{}) error {
	c.Delete(KeyColors)
	for name, def := range colors {
		if err := c.Set(ColorKey(name), def); err != nil {
			return fmt.Errorf("failed to set color %s: %w", name, err)
		}
	}
	return nil
}

// Truthy interprets a configuration value as a boolean. YAML 1.1 spellings
// beets accepts (yes/no/on/off) are recognized in addition to
// strconv-style values. ok is false when the value is not a boolean.
func Truthy(value interface{}) (b bool, ok bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case int:
		return v != 0, true
	case int64:
		return v != 0, true
	case float64:
		return v != 0, true
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes", "on":
			return true, true
		case "0", "f", "false", "n", "no", "off":
			return false, true
		}
	}
	return false, false
}
