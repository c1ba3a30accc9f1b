package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "SQLITE_PATH", "JWT_ISSUER", "SESSION_TTL_MINUTES", "CATALOG_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "docsearch.db", cfg.SQLitePath)
	assert.Equal(t, "docsearch", cfg.JWTIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("DOWNLOAD_BASE_URL", "https://docs.example/")
	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "https://docs.example/", cfg.DownloadBaseURL)
}

func TestInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SESSION_TTL_MINUTES", "-5")
	t.Setenv("LOG_LEVEL", "loud")
	cfg := Load()
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
}
