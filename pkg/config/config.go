package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	DatabaseURL     string
	RedisURL        string
	SQLitePath      string
	JWTSecret       string
	JWTIssuer       string
	SessionTTL      time.Duration
	CatalogPath     string
	DownloadBaseURL string
	LogLevel        slog.Level
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	return Config{
		Port:            getEnv("PORT", "8080"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		SQLitePath:      getEnv("SQLITE_PATH", "docsearch.db"),
		JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:       getEnv("JWT_ISSUER", "docsearch"),
		SessionTTL:      time.Duration(getEnvInt("SESSION_TTL_MINUTES", 7*24*60)) * time.Minute,
		CatalogPath:     os.Getenv("CATALOG_PATH"),
		DownloadBaseURL: os.Getenv("DOWNLOAD_BASE_URL"),
		LogLevel:        parseLevel(os.Getenv("LOG_LEVEL")),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}

// parseLevel accepts slog level names (debug, info, warn, error); anything
// else is info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
