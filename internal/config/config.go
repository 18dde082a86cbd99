package config

import (
	"errors"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	DatabaseURL          string
	RedisAddr            string
	Port                 string
	AppEnv               string
	BcryptCost           int
	OtelExporterEndpoint string
}

// Load reads configuration from environment variables.
// It applies defaults for "local" environments but enforces strictness for others.
func Load() (Config, error) {
	cfg := Config{
		Port:                 os.Getenv("PORT"),
		AppEnv:               os.Getenv("APP_ENV"),
		OtelExporterEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	// Default to production safety if not explicitly set to local
	if cfg.AppEnv == "" {
		cfg.AppEnv = "production"
	}

	cfg.BcryptCost = bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, errors.New("BCRYPT_COST must be an integer")
		}
		cfg.BcryptCost = cost
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	if cfg.RedisAddr == "" {
		return Config{}, errors.New("REDIS_ADDR is required")
	}

	return cfg, nil
}
