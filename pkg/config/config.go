// Package config loads application configuration from environment
// variables, with optional .env file support for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// AppEnv is the runtime environment (development, production, test).
	AppEnv string
	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string

	// StoreDriver selects the document store backend (memory, sqlite, postgres).
	StoreDriver string
	// DatabaseURL is the Postgres connection string (postgres driver).
	DatabaseURL string
	// SQLitePath is the SQLite database file path (sqlite driver).
	SQLitePath string
	// StoreCallTimeout bounds individual document store calls.
	StoreCallTimeout time.Duration

	// RedisURL is the Redis connection string for the query cache.
	// Empty selects the in-process freecache backend.
	RedisURL string
	// CacheStalenessWindow is how long cached query results stay fresh.
	CacheStalenessWindow time.Duration

	// RabbitMQURL is the broker connection string for domain events.
	// Empty selects the in-process bus.
	RabbitMQURL string

	// UserID is a fixed scope token for single-user CLI operation.
	UserID string
	// OAuthTokenURL, OAuthClientID and OAuthClientSecret configure the
	// client-credentials identity provider. All three must be set for
	// OAuth-based identity; otherwise UserID is used directly.
	OAuthTokenURL     string
	OAuthClientID     string
	OAuthClientSecret string

	// WorkerHealthAddr is the listen address for the worker health endpoint.
	WorkerHealthAddr string

	// SeedCatalog seeds the journey catalog with the default content
	// when the collection is empty.
	SeedCatalog bool
}

// Load reads configuration from environment variables. A .env file in
// the working directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:               getEnv("SANGAM_ENV", "development"),
		LogLevel:             getEnv("SANGAM_LOG_LEVEL", "info"),
		StoreDriver:          getEnv("SANGAM_STORE_DRIVER", "sqlite"),
		DatabaseURL:          getEnv("SANGAM_DATABASE_URL", ""),
		SQLitePath:           getEnv("SANGAM_SQLITE_PATH", defaultSQLitePath()),
		StoreCallTimeout:     getDurationEnv("SANGAM_STORE_TIMEOUT", 15*time.Second),
		RedisURL:             getEnv("SANGAM_REDIS_URL", ""),
		CacheStalenessWindow: getDurationEnv("SANGAM_CACHE_STALENESS_WINDOW", 5*time.Minute),
		RabbitMQURL:          getEnv("SANGAM_RABBITMQ_URL", ""),
		UserID:               getEnv("SANGAM_USER_ID", ""),
		OAuthTokenURL:        getEnv("SANGAM_OAUTH_TOKEN_URL", ""),
		OAuthClientID:        getEnv("SANGAM_OAUTH_CLIENT_ID", ""),
		OAuthClientSecret:    getEnv("SANGAM_OAUTH_CLIENT_SECRET", ""),
		WorkerHealthAddr:     getEnv("SANGAM_WORKER_HEALTH_ADDR", ":8086"),
		SeedCatalog:          getBoolEnv("SANGAM_SEED_CATALOG", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "memory", "sqlite", "postgres":
	default:
		return fmt.Errorf("invalid store driver %q (expected memory, sqlite or postgres)", c.StoreDriver)
	}
	if c.StoreDriver == "postgres" && c.DatabaseURL == "" {
		return fmt.Errorf("SANGAM_DATABASE_URL is required for the postgres store driver")
	}
	if c.StoreDriver == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("SANGAM_SQLITE_PATH is required for the sqlite store driver")
	}
	if c.CacheStalenessWindow <= 0 {
		return fmt.Errorf("cache staleness window must be positive, got %s", c.CacheStalenessWindow)
	}
	if c.StoreCallTimeout <= 0 {
		return fmt.Errorf("store call timeout must be positive, got %s", c.StoreCallTimeout)
	}
	return nil
}

// IsProduction reports whether the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// OAuthConfigured reports whether all OAuth identity settings are present.
func (c *Config) OAuthConfigured() bool {
	return c.OAuthTokenURL != "" && c.OAuthClientID != "" && c.OAuthClientSecret != ""
}

func defaultSQLitePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "sangam.db"
	}
	return home + "/.sangam/sangam.db"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
