// Package config loads server configuration from the environment into one
// immutable struct at startup.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings for the Notehub server.
//
// DATABASE_DSN, SECRET_KEY and ADDRESS are required; the process refuses to
// start without them. TOKEN_TTL bounds session token validity and defaults to
// 24h. Tokens are never issued without an expiry.
type Config struct {
	Address     string        `env:"ADDRESS" env-required:"true"`
	DatabaseDSN string        `env:"DATABASE_DSN" env-required:"true"`
	SecretKey   string        `env:"SECRET_KEY" env-required:"true"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" env-default:"24h"`
}

// Load reads the environment into a Config. Missing required variables are a
// startup error.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %v", cfg.TokenTTL)
	}
	return cfg, nil
}
