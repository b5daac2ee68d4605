package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

// Config collects everything the service reads from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	JWTExpiryHours int
	CORSOrigins    []string
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DB_URL"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		JWTExpiryHours: 24,
		CORSOrigins:    []string{"http://localhost:3000"},
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DB_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}

	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			cfg.JWTExpiryHours = h
		}
	}
	if env := os.Getenv("CORS_ORIGINS"); env != "" {
		cfg.CORSOrigins = strings.Split(env, ",")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
