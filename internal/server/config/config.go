// Package config loads the development server configuration from environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the development server settings. Every field can be set via
// environment variables; defaults make a bare `devserver` invocation work.
type Config struct {
	Address         string        `env:"ADDRESS" env-default:":8001"`
	SecretKey       string        `env:"SECRET_KEY" env-default:"dev-secret-change-me"`
	TokenValidity   time.Duration `env:"TOKEN_VALIDITY" env-default:"24h"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`

	// Seed account created at startup so a fresh server is usable
	// immediately.
	SeedEmail    string `env:"SEED_EMAIL" env-default:"admin@stadtwache.de"`
	SeedUsername string `env:"SEED_USERNAME" env-default:"Wachleiter"`
	SeedPassword string `env:"SEED_PASSWORD" env-default:"admin123"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}
	return &cfg, nil
}

// MustLoad is Load with a panic on error, for use in main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
