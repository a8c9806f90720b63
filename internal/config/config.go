// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"

	"pos-pricing/internal/errors"
	"pos-pricing/internal/logging"
)

// Environment variables consulted by ApplyEnv
const (
	EnvLogLevel     = "POS_LOG_LEVEL"
	EnvOutputFormat = "POS_OUTPUT_FORMAT"
	EnvNoColor      = "POS_NO_COLOR"
	EnvMaxAttempts  = "POS_MAX_ATTEMPTS"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Session contains checkout session settings
	Session SessionConfig `json:"session"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// SessionConfig contains checkout session settings
type SessionConfig struct {
	// MaxAttempts caps reprompts per value; 0 keeps asking until a valid value arrives
	MaxAttempts int `json:"max_attempts"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the receipt format (cli, json)
	Format string `json:"format"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Session: SessionConfig{
			MaxAttempts: 0,
		},
		Output: OutputConfig{
			Format:  "cli",
			NoColor: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// fileConfig mirrors Config for decoding. Every field is optional so a
// file only overrides what it names.
type fileConfig struct {
	Version *string       `hcl:"version,optional"`
	Session *sessionBlock `hcl:"session,block"`
	Output  *outputBlock  `hcl:"output,block"`
	Logging *loggingBlock `hcl:"logging,block"`
}

type sessionBlock struct {
	MaxAttempts *int `hcl:"max_attempts,optional"`
}

type outputBlock struct {
	Format  *string `hcl:"format,optional"`
	NoColor *bool   `hcl:"no_color,optional"`
}

type loggingBlock struct {
	Level       *string `hcl:"level,optional"`
	Format      *string `hcl:"format,optional"`
	Output      *string `hcl:"output,optional"`
	Development *bool   `hcl:"development,optional"`
}

// Load loads configuration from a .hcl or .json file.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, errors.Config("cannot read config file", err)
	}

	var fc fileConfig
	if err := hclsimple.DecodeFile(path, nil, &fc); err != nil {
		return nil, errors.Config("cannot decode config file "+path, err)
	}
	fc.apply(config)

	return config, nil
}

func (fc *fileConfig) apply(c *Config) {
	if fc.Version != nil {
		c.Version = *fc.Version
	}
	if s := fc.Session; s != nil {
		if s.MaxAttempts != nil {
			c.Session.MaxAttempts = *s.MaxAttempts
		}
	}
	if o := fc.Output; o != nil {
		if o.Format != nil {
			c.Output.Format = *o.Format
		}
		if o.NoColor != nil {
			c.Output.NoColor = *o.NoColor
		}
	}
	if l := fc.Logging; l != nil {
		if l.Level != nil {
			c.Logging.Level = *l.Level
		}
		if l.Format != nil {
			c.Logging.Format = *l.Format
		}
		if l.Output != nil {
			c.Logging.Output = *l.Output
		}
		if l.Development != nil {
			c.Logging.Development = *l.Development
		}
	}
}

// LoadDotEnv loads variables from .env files into the process
// environment. Variables already set win. Missing files are skipped;
// unreadable or malformed ones are a CONFIG_ERROR.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Config("cannot load env file "+name, err)
		}
	}
	return nil
}

// ApplyEnv overrides settings from environment variables read through lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvOutputFormat); ok && v != "" {
		c.Output.Format = strings.ToLower(v)
	}
	if v, ok := lookup(EnvNoColor); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config(EnvNoColor+" must be a boolean", err)
		}
		c.Output.NoColor = b
	}
	if v, ok := lookup(EnvMaxAttempts); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return errors.Config(EnvMaxAttempts+" must be a non-negative integer", err)
		}
		c.Session.MaxAttempts = n
	}
	return nil
}

// Validate checks settings that have a closed set of values
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "cli", "json":
	default:
		return errors.Config("unsupported output format: "+c.Output.Format, nil)
	}
	if c.Session.MaxAttempts < 0 {
		return errors.Config("max_attempts must not be negative", nil)
	}
	return nil
}

// Save saves configuration to a file as JSON, which Load reads back
// when the path ends in .json.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
