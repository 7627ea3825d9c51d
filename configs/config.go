package configs

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Database  DatabaseConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port int
}

// CORSConfig holds cross-origin request configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	Capacity       int
	RefillInterval time.Duration
}

// DatabaseConfig holds database settings. The service itself persists
// nothing; these are only inspected by the status endpoint.
type DatabaseConfig struct {
	URL  string
	Name string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	port, err := strconv.Atoi(getEnv("PORT", "8000"))
	if err != nil {
		return nil, err
	}

	rateCapacity, err := strconv.Atoi(getEnv("RATE_LIMIT_CAPACITY", "60"))
	if err != nil {
		return nil, err
	}

	rateInterval, err := time.ParseDuration(getEnv("RATE_LIMIT_INTERVAL", "1m"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Server: ServerConfig{
			Port: port,
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		},
		RateLimit: RateLimitConfig{
			Capacity:       rateCapacity,
			RefillInterval: rateInterval,
		},
		Database: DatabaseConfig{
			URL:  getEnv("DATABASE_URL", ""),
			Name: getEnv("DATABASE_NAME", ""),
		},
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
