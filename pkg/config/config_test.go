package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKeys = []string{
	"ENVIRONMENT", "LOG_LEVEL", "API_PORT", "CORS_ORIGINS", "DATABASE_DRIVER", "DATABASE_URL",
	"CACHE_BACKEND", "REDIS_URL", "CACHE_WRITE_TIMEOUT", "KAFKA_BROKERS", "KAFKA_TOPIC",
	"SNAPSHOT_REFRESH_SPEC",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range allKeys {
		t.Setenv(k, "")
	}
}

func TestFromEnv_WhenAllVariablesSet_ThenReturnsConfigWithSetValues(t *testing.T) {
	// Arrange
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("API_PORT", "9000")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://example.com")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:triggers.db")
	t.Setenv("CACHE_BACKEND", "memory")
	t.Setenv("CACHE_WRITE_TIMEOUT", "2s")
	t.Setenv("KAFKA_BROKERS", "kafka1:9092,kafka2:9092")
	t.Setenv("KAFKA_TOPIC", "ac-events")
	t.Setenv("SNAPSHOT_REFRESH_SPEC", "@every 30s")

	// Act
	cfg := FromEnv()

	// Assert
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "9000", cfg.APIPort)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.CORSOrigins)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "file:triggers.db", cfg.DatabaseURL)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
	assert.Equal(t, 2*time.Second, cfg.CacheWriteTimeout)
	assert.Equal(t, []string{"kafka1:9092", "kafka2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "ac-events", cfg.KafkaTopic)
	assert.Equal(t, "@every 30s", cfg.SnapshotRefreshSpec)
}

func TestFromEnv_WhenNoVariablesSet_ThenReturnsDefaults(t *testing.T) {
	// Arrange
	clearEnv(t)

	// Act
	cfg := FromEnv()

	// Assert
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, DriverMySQL, cfg.DatabaseDriver)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, CacheRedis, cfg.CacheBackend)
	assert.Equal(t, 5*time.Second, cfg.CacheWriteTimeout)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, "@every 1m", cfg.SnapshotRefreshSpec)
}

func TestSplitList_WhenEntriesHaveWhitespace_ThenTrimsAndDropsBlanks(t *testing.T) {
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"},
		splitList(" http://localhost:3000 , https://example.com ,  "))
	assert.Empty(t, splitList("   ,  ,  "))
}

func TestLoad_WhenFileGiven_ThenEnvOverridesFile(t *testing.T) {
	// Arrange
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_port: \"7000\"\ndatabase_driver: sqlite\ncache_backend: memory\n"), 0o600))
	t.Setenv("API_PORT", "7100")

	// Act
	cfg, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "7100", cfg.APIPort)
	assert.Equal(t, DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, CacheMemory, cfg.CacheBackend)
}

func TestLoad_WhenDriverUnknown_ThenReturnsError(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "postgres")

	_, err := Load("")

	assert.Error(t, err)
}
