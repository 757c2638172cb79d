package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	Environment  string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Load loads configuration from environment variables or sets defaults.
// The JWT signing secret has no default: a process started without one
// would issue forgeable credentials, so Load refuses instead.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, err
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	ttlStr := getEnv("TOKEN_TTL_HOURS", "24")
	ttlHours, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./agriprices.db"),
		Environment:  getEnv("APP_ENV", "development"),
		JWTSecret:    secret,
		TokenTTL:     time.Duration(ttlHours) * time.Hour,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
