package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

type Config struct {
	ServiceName     string
	Env             string
	HTTPAddr        string
	ProviderURL     string
	ProviderTimeout time.Duration
	Store           string
	DatabaseURL     string
	ShutdownTimeout time.Duration
}

// Load reads configuration from the environment, merging in a .env file
// when one exists next to the binary.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	cfg := &Config{
		ServiceName:     getenv("SERVICE_NAME", "payment-gateway"),
		Env:             getenv("ENV", "dev"),
		HTTPAddr:        getenv("HTTP_ADDR", ":8080"),
		ProviderURL:     getenv("PAYMENT_PROVIDER_URL", ""),
		ProviderTimeout: getenvDuration("PAYMENT_PROVIDER_TIMEOUT", 5*time.Second),
		Store:           getenv("PAYMENT_STORE", StoreMemory),
		DatabaseURL:     getenv("DATABASE_URL", ""),
		ShutdownTimeout: getenvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.ProviderURL == "" {
		return nil, fmt.Errorf("config: PAYMENT_PROVIDER_URL is required")
	}
	switch cfg.Store {
	case StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("config: DATABASE_URL is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("config: unknown store %q", cfg.Store)
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
