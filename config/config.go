// Package config loads humanurl CLI settings from defaults, an optional
// YAML file, HUMANURL_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jongio/humanurl/cliout"
	"github.com/jongio/humanurl/urlutil"
)

// EnvPrefix is the prefix for environment overrides, e.g. HUMANURL_OUTPUT.
const EnvPrefix = "HUMANURL"

// Config holds the complete CLI configuration.
type Config struct {
	Output       string    `mapstructure:"output"`
	Debug        bool      `mapstructure:"debug"`
	Hyperlinks   string    `mapstructure:"hyperlinks"`
	AssumeScheme string    `mapstructure:"assume_scheme"`
	MaxWidth     int       `mapstructure:"max_width"`
	Log          LogConfig `mapstructure:"log"`
	MCP          MCPConfig `mapstructure:"mcp"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Structured bool `mapstructure:"structured"`
}

// MCPConfig holds limits for the MCP tool server.
type MCPConfig struct {
	RateLimit float64 `mapstructure:"rate_limit"` // calls per second
	Burst     int     `mapstructure:"burst"`
}

// SetDefaults registers every key with its default value. Keys without a
// default are invisible to AutomaticEnv during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("output", string(cliout.FormatText))
	v.SetDefault("debug", false)
	v.SetDefault("hyperlinks", string(cliout.LinkAuto))
	v.SetDefault("assume_scheme", "")
	v.SetDefault("max_width", 0)
	v.SetDefault("log.structured", false)
	v.SetDefault("mcp.rate_limit", 10.0)
	v.SetDefault("mcp.burst", 20)
}

// NewViper returns a viper instance with defaults and environment binding.
// When cfgFile is empty, humanurl.yaml is looked up in the working directory
// and in the user config directory.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("humanurl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "humanurl"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// BindFlags binds command-line flags to config keys. Flags that were not
// passed on the command line do not override file or environment values.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		f := flags.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("failed to bind flag --%s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file, if any, and decodes and validates the result.
// A missing file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := cliout.ParseFormat(c.Output); err != nil {
		return err
	}
	if _, ok := cliout.ParseLinkMode(c.Hyperlinks); !ok {
		return fmt.Errorf("hyperlinks must be auto, always or never, got %q", c.Hyperlinks)
	}
	if c.AssumeScheme != "" && !urlutil.ValidScheme(c.AssumeScheme) {
		return fmt.Errorf("assume_scheme %q is not a valid scheme", c.AssumeScheme)
	}
	if c.MaxWidth < 0 {
		return errors.New("max_width must not be negative")
	}
	if c.MCP.RateLimit <= 0 {
		return errors.New("mcp.rate_limit must be positive")
	}
	if c.MCP.Burst < 1 {
		return errors.New("mcp.burst must be at least 1")
	}
	return nil
}

// Format returns the validated output format.
func (c *Config) Format() cliout.Format {
	f, _ := cliout.ParseFormat(c.Output)
	return f
}

// LinkMode returns the validated hyperlink mode.
func (c *Config) LinkMode() cliout.LinkMode {
	m, _ := cliout.ParseLinkMode(c.Hyperlinks)
	return m
}
