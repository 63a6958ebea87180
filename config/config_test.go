package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// writeConfig writes content to a temp config.yaml and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	assert.Equal(t, "config.yaml", filepath.Base(path))
	if os.Getenv("HOME") != "" && runtime.GOOS != "windows" {
		assert.Equal(t, ".pidigits", filepath.Base(filepath.Dir(path)))
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	require.NoError(t, err, "missing file falls back to defaults")

	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigValid(t *testing.T) {
	path := writeConfig(t, `
listen: 127.0.0.1:9000
max_digits: 5000
workers: 3
cache_digits: 0
request_timeout: 2s
log_level: debug
evaluator: stack
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, uint32(5000), cfg.MaxDigits)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, uint32(0), cfg.CacheDigits)
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.Equal(t, zapcore.DebugLevel, cfg.Level())
	assert.Len(t, cfg.EngineOptions(), 1)
}

func TestLoadConfigPartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "max_digits: 42\n"))
	require.NoError(t, err)

	assert.Equal(t, uint32(42), cfg.MaxDigits)
	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, zapcore.InfoLevel, cfg.Level())
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "listen: [unterminated\n"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty listen", func(c *Config) { c.Listen = "" }},
		{"zero max digits", func(c *Config) { c.MaxDigits = 0 }},
		{"max digits overflow", func(c *Config) { c.MaxDigits = 1 << 31 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"zero timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"bad level", func(c *Config) { c.LogLevel = "chatty" }},
		{"bad evaluator", func(c *Config) { c.Evaluator = "parallel" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadConfigInvalidValue(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "workers: -1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
