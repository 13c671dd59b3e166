// Package config loads process settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTP  HTTPConfig
	Store StoreConfig
	Log   LogConfig
	Clock ClockConfig
}

type HTTPConfig struct {
	Addr            string        `env:"HTTP_ADDR,default=:9090"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT,default=5s"`
}

type StoreConfig struct {
	Driver          string        `env:"STORE_DRIVER,default=postgres"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,default=5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME,default=30m"`
	ConnectRetries  int           `env:"DB_CONNECT_RETRIES,default=5"`
	// QueryTimeout 0 means no per-fetch deadline.
	QueryTimeout time.Duration `env:"DB_QUERY_TIMEOUT,default=0s"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL,default=info"`
	Format string `env:"LOG_FORMAT,default=json"`
}

type ClockConfig struct {
	DefaultZone string   `env:"CLOCK_DEFAULT_ZONE,default=Europe/London"`
	Zones       []string `env:"CLOCK_ZONES"`
}

// Load reads an optional .env file and decodes the environment into Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}
	return FromEnv()
}

// FromEnv decodes the current environment without touching .env
func FromEnv() (*Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints the struct tags cannot express.
// Zone names are checked when the clock service is built.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Store.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres store")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Store.MaxOpenConns < 0 || c.Store.MaxIdleConns < 0 || c.Store.ConnectRetries < 0 {
		return errors.New("store pool sizes and retries must not be negative")
	}
	if c.Store.QueryTimeout < 0 {
		return errors.New("DB_QUERY_TIMEOUT must not be negative")
	}
	if c.HTTP.Addr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	return nil
}
