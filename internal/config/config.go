package config

import (
	"errors"
	"os"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	StorageDir    string
	SigningSecret string
}

// Load reads the configuration from the environment. DATABASE_URL and
// URL_SIGNING_SECRET have no sane defaults and are required. REDIS_URL is
// optional; without it the fanout runs in-process only.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		StorageDir:    getEnv("STORAGE_DIR", "./data/blobs"),
		SigningSecret: os.Getenv("URL_SIGNING_SECRET"),
	}
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	if cfg.SigningSecret == "" {
		return nil, errors.New("URL_SIGNING_SECRET is not set")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
