// Package config loads server configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the full server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int

	// RedisAddr is the address of the shared result cache. Empty means
	// the in-process cache is used instead.
	RedisAddr string

	// CacheTTL bounds how long memoized advisory results are served.
	CacheTTL time.Duration

	// RateLimitCapacity is the per-client request budget per interval.
	RateLimitCapacity int

	// RateLimitInterval is the budget refill interval.
	RateLimitInterval time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present; real environment variables win.
func Load() Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	return Config{
		Port:              intEnv("PORT", 8080),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          durationEnv("CACHE_TTL", 5*time.Minute),
		RateLimitCapacity: intEnv("RATE_LIMIT_CAPACITY", 60),
		RateLimitInterval: durationEnv("RATE_LIMIT_INTERVAL", time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Warn("invalid integer in environment, using fallback", "key", key, "value", value)
		return fallback
	}
	return parsed
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		slog.Warn("invalid duration in environment, using fallback", "key", key, "value", value)
		return fallback
	}
	return parsed
}
