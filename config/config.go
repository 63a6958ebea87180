// Package config loads service and CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pidigits/chudnovsky"
)

// ErrInvalidConfig is returned by Validate (and LoadConfig) for values the
// service cannot run with.
var ErrInvalidConfig = errors.New("config: invalid value")

// Defaults applied before a file is read.
const (
	DefaultListen         = ":8080"
	DefaultMaxDigits      = 1_000_000
	DefaultCacheDigits    = 100_000
	DefaultRequestTimeout = 60 * time.Second
	DefaultLogLevel       = "info"
)

// Config represents the pidigits configuration.
type Config struct {
	// Listen is the HTTP listen address of `pidigits serve`.
	Listen string `yaml:"listen"`

	// MaxDigits caps the digits accepted per request; at most chudnovsky.MaxDigits.
	MaxDigits uint32 `yaml:"max_digits"`

	// Workers caps concurrent computations.
	Workers int `yaml:"workers"`

	// CacheDigits is the largest result kept for prefix reuse; 0 disables it.
	CacheDigits uint32 `yaml:"cache_digits"`

	// RequestTimeout bounds how long a request waits for a result.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogLevel is a zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// Evaluator is "recursive" or "stack".
	Evaluator string `yaml:"evaluator"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Listen:         DefaultListen,
		MaxDigits:      DefaultMaxDigits,
		Workers:        runtime.NumCPU(),
		CacheDigits:    DefaultCacheDigits,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       DefaultLogLevel,
		Evaluator:      chudnovsky.Recursive.String(),
	}
}

// DefaultConfigPath returns the default configuration file path for the current platform.
// - macOS/Linux: ~/.pidigits/config.yaml
// - Windows: %USERPROFILE%\.pidigits\config.yaml
func DefaultConfigPath() string {
	var homeDir string

	if runtime.GOOS == "windows" {
		homeDir = os.Getenv("USERPROFILE")
	} else {
		homeDir = os.Getenv("HOME")
	}

	if homeDir == "" {
		// Fallback to current directory
		return "config.yaml"
	}

	return filepath.Join(homeDir, ".pidigits", "config.yaml")
}

// LoadConfig loads configuration from the specified path over the defaults.
// If the file doesn't exist, returns the defaults without error.
// Returns an error if the file exists but cannot be read, parsed or validated.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Missing config file is not an error
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against what the service accepts.
func (c *Config) Validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen must not be empty: %w", ErrInvalidConfig)
	}
	if c.MaxDigits == 0 || c.MaxDigits > chudnovsky.MaxDigits {
		return fmt.Errorf("max_digits must be in [1, %d], got %d: %w", uint32(chudnovsky.MaxDigits), c.MaxDigits, ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", c.Workers, ErrInvalidConfig)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %s: %w", c.RequestTimeout, ErrInvalidConfig)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q: %w", c.LogLevel, ErrInvalidConfig)
	}
	if _, err := chudnovsky.ParseEvaluator(c.Evaluator); err != nil {
		return fmt.Errorf("evaluator %q: %w", c.Evaluator, ErrInvalidConfig)
	}

	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() zapcore.Level {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// EngineOptions translates the engine-related fields into chudnovsky options.
func (c *Config) EngineOptions() []chudnovsky.Option {
	ev, err := chudnovsky.ParseEvaluator(c.Evaluator)
	if err != nil {
		ev = chudnovsky.Recursive
	}
	return []chudnovsky.Option{chudnovsky.WithEvaluator(ev)}
}
