// Package config loads the command line configuration file.
//
// The file is TOML. Without an explicit path it is searched for as
// `winpath/config.toml` under the XDG configuration directories. Values
// missing from the file keep their defaults.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"
	"github.com/invopop/jsonschema"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/macropower/winpath/pkg/log"
	"github.com/macropower/winpath/pkg/winpath"
)

const (
	AppName  = "winpath"
	FileName = "config.toml"
)

var (
	// ErrLoad indicates the configuration file could not be read or decoded.
	ErrLoad = errors.New("load config")

	// ErrInvalidConfig indicates a configuration value that cannot be used.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the command line configuration.
type Config struct {
	// Separator written by clean and join. Either "\" or "/".
	Separator string `json:"separator" koanf:"separator" yaml:"separator"`
	// Log output settings.
	Log LogConfig `json:"log" koanf:"log" yaml:"log"`
	// Buffer capacities, in bytes.
	Limits winpath.Limits `json:"limits" koanf:"limits" yaml:"limits"`

	source string
}

// LogConfig holds log output settings.
type LogConfig struct {
	// One of debug, info, warn, error.
	Level string `json:"level" koanf:"level" yaml:"level"`
	// One of text, logfmt, json.
	Format string `json:"format" koanf:"format" yaml:"format"`
}

// Default returns the default [Config].
func Default() *Config {
	return &Config{
		Separator: string(winpath.Separator),
		Limits:    winpath.DefaultLimits(),
		Log: LogConfig{
			Level:  "warn",
			Format: log.FormatText,
		},
	}
}

// Load reads the configuration file at path over the defaults. An empty path
// searches the XDG configuration directories, and finding nothing there is
// not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		found, err := xdg.SearchConfigFile(filepath.Join(AppName, FileName))
		if err != nil {
			return cfg, nil
		}

		path = found
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.source = path

	return cfg, nil
}

// Source returns the file c was loaded from, or "" for the defaults.
func (c *Config) Source() string {
	return c.source
}

// Validate reports every invalid value in c.
func (c *Config) Validate() error {
	var merr error

	if len(c.Separator) != 1 || !winpath.IsSeparator(c.Separator[0]) {
		merr = multierror.Append(merr, fmt.Errorf("separator must be %q or %q, got %q",
			string(winpath.Separator), string(winpath.AltSeparator), c.Separator))
	}

	if err := c.Limits.Validate(); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := log.GetLevel(c.Log.Level); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := log.GetFormatter(c.Log.Format); err != nil {
		merr = multierror.Append(merr, err)
	}

	if merr != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, merr)
	}

	return nil
}

// SeparatorByte returns the configured separator.
func (c *Config) SeparatorByte() byte {
	if c.Separator == "" {
		return winpath.Separator
	}

	return c.Separator[0]
}

// Paths returns the [winpath.Paths] described by c.
func (c *Config) Paths() *winpath.Paths {
	return winpath.New(
		winpath.WithLimits(c.Limits),
		winpath.WithSeparator(c.SeparatorByte()),
	)
}

// WriteYAML writes c to w as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal YAML: %w", err)
	}

	return nil
}

// Schema returns the JSON schema of the configuration file.
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}

	b, err := json.MarshalIndent(r.Reflect(&Config{}), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal JSON: %w", err)
	}

	return b, nil
}
