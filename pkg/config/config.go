// Copyright 2025 Certen Protocol
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the parameters of one VIPER demo session.
type Config struct {
	// Session Configuration
	NumClients int // n: number of signers/clients in the session
	RowWidth   int // t: number of cells per client row

	// Dataset Configuration
	NumRows int // rows generated per client dataset

	// Worker Pool Configuration
	WorkerPoolSize int // loaded and validated only; no errgroup fan-out reads it, none is capped

	// Logging Configuration
	LogLevel string
}

// Load reads session configuration from environment variables, falling
// back to the spec's worked-example defaults (n=2, t=2) when unset.
func Load() (*Config, error) {
	cfg := &Config{
		NumClients:     getEnvInt("VIPER_NUM_CLIENTS", 2),
		RowWidth:       getEnvInt("VIPER_ROW_WIDTH", 2),
		NumRows:        getEnvInt("VIPER_NUM_ROWS", 1),
		WorkerPoolSize: getEnvInt("VIPER_WORKER_POOL_SIZE", 8),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}

	return cfg, cfg.Validate()
}

// Validate checks that the session parameters describe a runnable
// protocol instance.
func (c *Config) Validate() error {
	if c.NumClients <= 0 {
		return fmt.Errorf("config: VIPER_NUM_CLIENTS must be positive, got %d", c.NumClients)
	}
	if c.RowWidth <= 0 {
		return fmt.Errorf("config: VIPER_ROW_WIDTH must be positive, got %d", c.RowWidth)
	}
	if c.NumRows <= 0 {
		return fmt.Errorf("config: VIPER_NUM_ROWS must be positive, got %d", c.NumRows)
	}
	if c.WorkerPoolSize <= 0 {
		return fmt.Errorf("config: VIPER_WORKER_POOL_SIZE must be positive, got %d", c.WorkerPoolSize)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
