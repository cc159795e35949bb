package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"HBS_LOG_LEVEL", "HBS_LOG_FORMAT", "HBS_MODULE_PATH", "HBS_OUTPUT",
		"HBS_EXTENSION", "HBS_BUILTIN_HELPERS", "HBS_REDIS_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, []string{"hbs_modules"}, cfg.ModulePaths)
	assert.Equal(t, "", cfg.OutputDir)
	assert.Equal(t, "html", cfg.Extension)
	assert.True(t, cfg.BuiltinHelpers)
	assert.Equal(t, 5*time.Second, cfg.RedisTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HBS_LOG_LEVEL", "debug")
	t.Setenv("HBS_LOG_FORMAT", "json")
	t.Setenv("HBS_MODULE_PATH", "vendor/helpers:/opt/hbs")
	t.Setenv("HBS_OUTPUT", "site")
	t.Setenv("HBS_EXTENSION", "txt")
	t.Setenv("HBS_BUILTIN_HELPERS", "false")
	t.Setenv("HBS_REDIS_TIMEOUT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"vendor/helpers", "/opt/hbs"}, cfg.ModulePaths)
	assert.Equal(t, "site", cfg.OutputDir)
	assert.Equal(t, "txt", cfg.Extension)
	assert.False(t, cfg.BuiltinHelpers)
	assert.Equal(t, 250*time.Millisecond, cfg.RedisTimeout)
	assert.Contains(t, cfg.String(), "Extension=txt")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:     "info",
			LogFormat:    "console",
			Extension:    "html",
			RedisTimeout: time.Second,
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "HBS_LOG_LEVEL"},
		{name: "bad log format", mutate: func(c *Config) { c.LogFormat = "xml" }, wantErr: "HBS_LOG_FORMAT"},
		{name: "empty extension", mutate: func(c *Config) { c.Extension = "." }, wantErr: "HBS_EXTENSION"},
		{name: "zero timeout", mutate: func(c *Config) { c.RedisTimeout = 0 }, wantErr: "HBS_REDIS_TIMEOUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
