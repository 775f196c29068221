// Package config loads runtime settings from environment variables.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds everything billman reads from the environment.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// AuthDelay is the simulated latency of the placeholder
	// authentication flow.
	AuthDelay time.Duration

	// SessionSecret signs session markers.
	SessionSecret string

	// SessionTTL is how long a session marker stays valid.
	SessionTTL time.Duration

	// IDScheme selects the identifier generator: uuid or ulid.
	IDScheme string
}

// Load reads the environment into a Config, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		AuthDelay:     time.Duration(getEnvInt("AUTH_DELAY_MS", 600)) * time.Millisecond,
		SessionSecret: getEnv("SESSION_SECRET", "billman-dev-secret"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		IDScheme:      getEnv("ID_SCHEME", "uuid"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
