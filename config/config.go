package config

import (
	"errors"
	"os"
	"strings"
)

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string
}

// AppConfig holds the application-wide configuration
var AppConfig Config

// Load reads configuration from the environment and performs minimal
// validation. DATABASE_URL may be empty, in which case the server falls back
// to the seeded in-memory store.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("JWT_SECRET is required")
	}

	AppConfig = cfg
	return cfg, nil
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
