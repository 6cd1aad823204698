package config

import (
	"os"
	"time"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite (default), postgres, mysql, memory
	DatabasePath   string
	DatabaseURL    string
	MigrationsPath string

	GeminiAPIKey string
	GeminiModel  string

	TokenSecret   string
	TokenDuration time.Duration

	// StrictScoring switches tile scoring to the duplicate-aware rule.
	// Off by default: the game shipped with per-letter-presence scoring and
	// existing players expect it.
	StrictScoring bool

	RateLimit  int
	RateWindow time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./wordle.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		TokenSecret:    getEnv("TOKEN_SECRET", "dev-only-secret"),
		TokenDuration:  365 * 24 * time.Hour,
		StrictScoring:  getEnv("STRICT_SCORING", "") == "true",
		RateLimit:      20,
		RateWindow:     time.Minute,
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
