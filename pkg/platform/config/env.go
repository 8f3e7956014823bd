package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults holds CLI defaults that can be overridden from the environment
type Defaults struct {
	MaxPeriods int    `env:"LOTSIZE_MAX_PERIODS" envDefault:"5000"`
	Rule       string `env:"LOTSIZE_RULE" envDefault:"dynamic"`
	Format     string `env:"LOTSIZE_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadDefaults returns Defaults populated from the environment
func LoadDefaults() (Defaults, error) {
	var defaults Defaults
	if err := ParseEnv(&defaults); err != nil {
		return Defaults{}, err
	}
	if defaults.MaxPeriods < 0 {
		return Defaults{}, fmt.Errorf("LOTSIZE_MAX_PERIODS must be non-negative, got %d", defaults.MaxPeriods)
	}
	return defaults, nil
}
