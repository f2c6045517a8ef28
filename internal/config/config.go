// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Config holds settings shared by every command.
type Config struct {
	// DBPath overrides the default preference database location.
	DBPath string `env:"WORDWISE_DB"`

	// CatalogPath points at a YAML catalog replacing the built-in word families.
	CatalogPath string `env:"WORDWISE_CATALOG"`

	// LogFile receives JSON logs. Empty disables logging.
	LogFile  string        `env:"WORDWISE_LOG_FILE"`
	LogLevel zapcore.Level `env:"WORDWISE_LOG_LEVEL" envDefault:"info"`

	// MaxGroups caps how many groups can be selected on the setup screen.
	MaxGroups int `env:"WORDWISE_MAX_GROUPS" envDefault:"4"`

	// SkipDB keeps preferences in memory only.
	SkipDB bool `env:"WORDWISE_SKIP_DB"`
}

// ErrInvalidConfig is returned when a parsed value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// Load reads .env files (missing files are ignored) and then parses the
// environment. Variables already set in the environment win over .env.
func Load(envFiles ...string) (Config, error) {
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges that the env parser cannot express.
func (c Config) Validate() error {
	if c.MaxGroups < 1 {
		return fmt.Errorf("%w: WORDWISE_MAX_GROUPS must be at least 1, got %d", ErrInvalidConfig, c.MaxGroups)
	}
	return nil
}
