package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/asciitable/internal/design"
	"github.com/salmonumbrella/asciitable/internal/validate"
)

// Config represents the CLI configuration
type Config struct {
	// Default output format (table, json, yaml)
	Output string `json:"output,omitempty" yaml:"output,omitempty"`

	// Default color mode for status messages (auto, always, never)
	Color string `json:"color,omitempty" yaml:"color,omitempty"`

	// Default input format (auto, csv, tsv, json, yaml)
	InputFormat string `json:"input_format,omitempty" yaml:"input_format,omitempty"`

	// Border and separator glyphs, one printable ASCII character each
	Corner     string `json:"corner,omitempty" yaml:"corner,omitempty"`
	Horizontal string `json:"horizontal,omitempty" yaml:"horizontal,omitempty"`
	Vertical   string `json:"vertical,omitempty" yaml:"vertical,omitempty"`

	// Spaces on each side of a cell value; nil means the built-in default
	Padding *int `json:"padding,omitempty" yaml:"padding,omitempty"`

	// Upper bound for inferred column widths (0 = unbounded)
	MaxColumnWidth int `json:"max_column_width,omitempty" yaml:"max_column_width,omitempty"`
}

// Keys lists the keys accepted by Set, in display order.
var Keys = []string{"output", "color", "input_format", "corner", "horizontal", "vertical", "padding", "max_column_width"}

// configPathFunc is the function used to get the default config path
// It can be overridden for testing
var configPathFunc = defaultConfigPath

// SetConfigPathFunc sets the config path function for testing.
// Returns the original function so it can be restored.
func SetConfigPathFunc(fn func() (string, error)) func() (string, error) {
	orig := configPathFunc
	configPathFunc = fn
	return orig
}

// defaultConfigPath returns ~/.config/tbl/config.yaml, honoring TBL_CONFIG.
func defaultConfigPath() (string, error) {
	if p := os.Getenv("TBL_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "tbl", "config.yaml"), nil
}

// DefaultConfigPath returns the config file location.
func DefaultConfigPath() (string, error) {
	return configPathFunc()
}

// Load loads config from the default path, returns empty config if not found
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return &Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Save saves config to the default path
func (c *Config) Save() error {
	path, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return c.SaveToPath(path)
}

// SaveToPath saves config to a specific path
func (c *Config) SaveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks every set field.
func (c *Config) Validate() error {
	if c.Output != "" {
		if err := validate.OneOf("output", c.Output, "table", "json", "yaml"); err != nil {
			return err
		}
	}
	if c.Color != "" {
		if err := validate.OneOf("color", c.Color, "auto", "always", "never"); err != nil {
			return err
		}
	}
	if c.InputFormat != "" {
		if err := validate.OneOf("input_format", c.InputFormat, "auto", "csv", "tsv", "json", "yaml"); err != nil {
			return err
		}
	}
	if _, err := c.Glyphs(); err != nil {
		return err
	}
	if c.Padding != nil {
		if err := validate.Padding("padding", *c.Padding); err != nil {
			return err
		}
	}
	return validate.NonNegative("max_column_width", c.MaxColumnWidth)
}

// Glyphs returns the configured glyphs, falling back to design defaults for
// unset ones.
func (c *Config) Glyphs() (design.Glyphs, error) {
	g := design.DefaultGlyphs
	for _, f := range []struct {
		name  string
		value string
		dst   *rune
	}{
		{"corner", c.Corner, &g.Corner},
		{"horizontal", c.Horizontal, &g.Horizontal},
		{"vertical", c.Vertical, &g.Vertical},
	} {
		if f.value == "" {
			continue
		}
		r, err := validate.Glyph(f.name, f.value)
		if err != nil {
			return design.Glyphs{}, err
		}
		*f.dst = r
	}
	return g, nil
}

// GetPadding returns the configured padding or design.DefaultPadding.
func (c *Config) GetPadding() int {
	if c.Padding == nil {
		return design.DefaultPadding
	}
	return *c.Padding
}

// Set assigns key from its string form after validating it.
func (c *Config) Set(key, value string) error {
	next := *c
	switch key {
	case "output":
		next.Output = strings.ToLower(value)
	case "color":
		next.Color = strings.ToLower(value)
	case "input_format":
		next.InputFormat = strings.ToLower(value)
	case "corner":
		next.Corner = value
	case "horizontal":
		next.Horizontal = value
	case "vertical":
		next.Vertical = value
	case "padding":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("padding: must be an integer, got %q", value)
		}
		next.Padding = &n
	case "max_column_width":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("max_column_width: must be an integer, got %q", value)
		}
		next.MaxColumnWidth = n
	default:
		return fmt.Errorf("unknown config key %q\n\nSupported keys: %s", key, strings.Join(Keys, ", "))
	}
	if err := next.Validate(); err != nil {
		return err
	}
	*c = next
	return nil
}
