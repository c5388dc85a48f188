// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

// Environment represents different deployment environments
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Store driver names accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRemote   = "remote"
)

// Placeholder values that ship in .env.example. A remote config still
// carrying one of these is treated as unconfigured.
var placeholders = map[string]bool{
	"": true, "YOUR-SUPABASE-URL": true, "YOUR-API-KEY": true,
	"changeme": true, "TODO": true,
}

// Config holds the configuration for the admin service.
// Environment variables are parsed from the TONEARM_ prefix.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// Store selection: memory, sqlite, postgres or remote.
	StoreDriver string `envconfig:"STORE_DRIVER" default:"memory"`

	// HTTP Configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// SQLite Configuration
	SQLitePath string `envconfig:"SQLITE_PATH" default:"tonearm.db"`

	// Postgres Configuration
	PostgresDSN string `envconfig:"POSTGRES_DSN" default:""`

	// Remote store (PostgREST-style) Configuration
	RemoteBaseURL string `envconfig:"REMOTE_BASE_URL" default:""`
	RemoteAPIKey  string `envconfig:"REMOTE_API_KEY" default:""`

	// Seed the memory store with demo records on startup.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Validate checks driver selection and driver-specific settings. Missing or
// placeholder remote credentials are downgraded to the memory driver with a
// warning so a fresh checkout still starts.
func (c *Config) Validate() error {
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
	switch c.StoreDriver {
	case DriverMemory, DriverSQLite:
	case DriverPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("STORE_DRIVER=postgres requires POSTGRES_DSN")
		}
	case DriverRemote:
		if placeholders[c.RemoteBaseURL] || placeholders[c.RemoteAPIKey] {
			log.Warn().Msg("remote store credentials missing or placeholder; falling back to memory store")
			c.StoreDriver = DriverMemory
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER: %s", c.StoreDriver)
	}
	return nil
}

// New creates a new Config by parsing environment variables.
// Variables are prefixed with TONEARM_, e.g. TONEARM_HTTP_PORT. A .env file
// in the working directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("TONEARM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Info().
		Str("environment", string(cfg.Environment)).
		Str("store_driver", cfg.StoreDriver).
		Int("port", cfg.HTTPPort).
		Bool("seed_demo_data", cfg.SeedDemoData).
		Str("remote_configured", func() string {
			if cfg.RemoteBaseURL != "" {
				return "true"
			}
			return "false"
		}()).
		Msg("Configuration loaded")

	return &cfg, nil
}

// NewForTesting creates a config specifically for testing
func NewForTesting() *Config {
	return &Config{
		Environment:  EnvTesting,
		StoreDriver:  DriverMemory,
		HTTPPort:     8080,
		SQLitePath:   ":memory:",
		SeedDemoData: false,
		LogLevel:     "debug",
	}
}

// IsTesting returns true if the environment is set to testing
func (c *Config) IsTesting() bool {
	return c.Environment == EnvTesting
}

// IsProduction returns true if the environment is set to production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}
