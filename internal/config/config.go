// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is the process configuration.
type Config struct {
	Addr        string `env:"ADDR" envDefault:":8080"`
	WebDir      string `env:"WEB_DIR" envDefault:"web"`
	Store       string `env:"STORE" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"weightloss.db"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env: %v", err)
	}
	return Parse()
}

// Parse parses the environment into a Config without touching .env files.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field requirements.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for STORE=sqlite")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for STORE=postgres")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("STORE must be %q, %q or %q", StoreSQLite, StorePostgres, StoreMemory)
	}
	return nil
}
