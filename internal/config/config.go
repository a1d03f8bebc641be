package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Config holds settings read from the environment. CLI flags override them.
type Config struct {
	StorageType  string     `env:"YAHTZEE_STORAGE" envDefault:"memory"`
	RedisURL     string     `env:"YAHTZEE_REDIS_URL" envDefault:"redis://localhost:6379"`
	LogLevel     slog.Level `env:"YAHTZEE_LOG_LEVEL" envDefault:"WARN"`
	ManualDice   bool       `env:"YAHTZEE_MANUAL_DICE"`
	Seed         uint64     `env:"YAHTZEE_SEED"`
	HistoryLimit int        `env:"YAHTZEE_HISTORY_LIMIT" envDefault:"10"`
	Output       string     `env:"YAHTZEE_OUTPUT" envDefault:"text"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that the environment parser cannot
func (c *Config) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory, StorageTypeRedis:
	default:
		return fmt.Errorf("invalid storage type %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history limit must not be negative")
	}
	return nil
}
