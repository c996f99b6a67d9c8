package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/qualoffer"
	"github.com/joho/godotenv"
)

// Config holds settings read from the environment. Command-line flags
// override these values when given.
type Config struct {
	DefaultURL string        `env:"QUALOFFER_DEFAULT_URL"`
	OutputDir  string        `env:"QUALOFFER_OUTPUT_DIR" envDefault:"."`
	Timeout    time.Duration `env:"QUALOFFER_TIMEOUT" envDefault:"10s"`
	TopN       int           `env:"QUALOFFER_TOP_N" envDefault:"125"`
	LogLevel   string        `env:"QUALOFFER_LOG_LEVEL" envDefault:"warn"`
	NoAudit    bool          `env:"QUALOFFER_NO_AUDIT"`
}

// LoadConfig loads any of envFiles that exist into the process environment
// and parses the configuration from it.
func LoadConfig(envFiles ...string) (*Config, error) {
	existing := make([]string, 0, len(envFiles))
	for _, file := range envFiles {
		if _, err := os.Stat(file); err == nil {
			existing = append(existing, file)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, qualoffer.Errorf(qualoffer.EINVALID, "failed to load %v: %v", existing, err)
		}
	}
	return ParseConfig(nil)
}

// ParseConfig parses the configuration from environ, or from the process
// environment when environ is nil.
func ParseConfig(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return nil, qualoffer.Errorf(qualoffer.EINVALID, "invalid configuration: %v", err)
	}
	if cfg.DefaultURL == "" {
		cfg.DefaultURL = qualoffer.DefaultSourceURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.TopN <= 0 {
		return qualoffer.Errorf(qualoffer.EINVALID, "QUALOFFER_TOP_N must be positive, got %d", c.TopN)
	}
	if c.Timeout <= 0 {
		return qualoffer.Errorf(qualoffer.EINVALID, "QUALOFFER_TIMEOUT must be positive, got %s", c.Timeout)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, qualoffer.Errorf(qualoffer.EINVALID, "unknown log level %q", c.LogLevel)
	}
	return level, nil
}
