package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers understood by the trigger store.
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

// Snapshot cache backends.
const (
	CacheRedis  = "redis"
	CacheMemory = "memory"
)

// App holds runtime configuration derived from env vars or an optional config file.
type App struct {
	Environment string
	LogLevel    string
	APIPort     string
	CORSOrigins []string

	DatabaseDriver string
	DatabaseURL    string

	CacheBackend      string
	RedisURL          string
	CacheWriteTimeout time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	SnapshotRefreshSpec string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("environment", "production")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_port", "8080")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("database_driver", DriverMySQL)
	v.SetDefault("database_url", "")
	v.SetDefault("cache_backend", CacheRedis)
	v.SetDefault("redis_url", "redis://localhost:6379/0")
	v.SetDefault("cache_write_timeout", 5*time.Second)
	v.SetDefault("kafka_brokers", "")
	v.SetDefault("kafka_topic", "ac-trigger-events")
	v.SetDefault("snapshot_refresh_spec", "@every 1m")
	v.AutomaticEnv()
	return v
}

// FromEnv loads the application configuration from environment variables.
// Empty variables fall back to defaults.
func FromEnv() App {
	return fromViper(newViper())
}

// Load reads a config file (yaml, json, toml...) and overlays environment variables on top.
// An empty path behaves like FromEnv.
func Load(path string) (App, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return App{}, fmt.Errorf("read config %q: %w", path, err)
		}
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return App{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (a App) Validate() error {
	switch a.DatabaseDriver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", a.DatabaseDriver)
	}
	switch a.CacheBackend {
	case CacheRedis, CacheMemory:
	default:
		return fmt.Errorf("unsupported cache backend %q", a.CacheBackend)
	}
	return nil
}

func fromViper(v *viper.Viper) App {
	return App{
		Environment:         v.GetString("environment"),
		LogLevel:            v.GetString("log_level"),
		APIPort:             v.GetString("api_port"),
		CORSOrigins:         splitList(v.GetString("cors_origins")),
		DatabaseDriver:      strings.ToLower(strings.TrimSpace(v.GetString("database_driver"))),
		DatabaseURL:         v.GetString("database_url"),
		CacheBackend:        strings.ToLower(strings.TrimSpace(v.GetString("cache_backend"))),
		RedisURL:            v.GetString("redis_url"),
		CacheWriteTimeout:   v.GetDuration("cache_write_timeout"),
		KafkaBrokers:        splitList(v.GetString("kafka_brokers")),
		KafkaTopic:          v.GetString("kafka_topic"),
		SnapshotRefreshSpec: v.GetString("snapshot_refresh_spec"),
	}
}

// splitList splits a comma separated value, dropping blank entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
