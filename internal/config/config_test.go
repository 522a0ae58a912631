package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trains.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `http_port: "9000"
redis_addr: "localhost:6379"
cache_ttl_seconds: 30
log_level: debug
`)
	t.Setenv("TRAINS_REDIS_ADDR", "cache:6379")
	t.Setenv("TRAINS_DATABASE_URL", "postgres://trains@db/trains")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "cache:6379", cfg.RedisAddr)
	assert.Equal(t, "postgres://trains@db/trains", cfg.DatabaseURL)
	assert.Equal(t, 30, cfg.CacheTTLSeconds)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "data/seeds/scenarios.json", cfg.SeedPath)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 600, cfg.CacheTTLSeconds)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	_, err := Load(writeConfig(t, "log_level: chatty\n"))
	assert.ErrorContains(t, err, "log_level")

	_, err = Load(writeConfig(t, "cache_ttl_seconds: -5\n"))
	assert.ErrorContains(t, err, "cache_ttl_seconds")

	_, err = Load(filepath.Join(t.TempDir(), "trains.toml"))
	assert.ErrorContains(t, err, "unsupported")
}

func TestGet(t *testing.T) {
	t.Setenv("TRAINS_TEST_GET", " value ")
	assert.Equal(t, "value", Get("TRAINS_TEST_GET", "fallback"))
	assert.Equal(t, "fallback", Get("TRAINS_TEST_UNSET", "fallback"))
}
