package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the environment configuration of hbs. Command line flags
// override the output settings.
type Config struct {
	// Logging configuration
	LogLevel  string `env:"HBS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"HBS_LOG_FORMAT" envDefault:"console"`

	// Module resolution
	ModulePaths []string `env:"HBS_MODULE_PATH" envSeparator:":" envDefault:"hbs_modules"`

	// Output configuration
	OutputDir string `env:"HBS_OUTPUT" envDefault:""`
	Extension string `env:"HBS_EXTENSION" envDefault:"html"`

	// Helpers
	BuiltinHelpers bool `env:"HBS_BUILTIN_HELPERS" envDefault:"true"`

	// Redis data sources
	RedisTimeout time.Duration `env:"HBS_REDIS_TIMEOUT" envDefault:"5s"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("HBS_LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogFormat != "console" && c.LogFormat != "json" {
		return fmt.Errorf("HBS_LOG_FORMAT must be one of: console, json")
	}

	if strings.TrimPrefix(c.Extension, ".") == "" {
		return fmt.Errorf("HBS_EXTENSION must not be empty")
	}

	if c.RedisTimeout <= 0 {
		return fmt.Errorf("HBS_REDIS_TIMEOUT must be positive")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{LogLevel=%s, LogFormat=%s, ModulePaths=%v, OutputDir=%q, Extension=%s, "+
			"BuiltinHelpers=%v, RedisTimeout=%s}",
		c.LogLevel,
		c.LogFormat,
		c.ModulePaths,
		c.OutputDir,
		c.Extension,
		c.BuiltinHelpers,
		c.RedisTimeout,
	)
}
