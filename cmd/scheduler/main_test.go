package main

import (
	"context"
	"testing"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestRun_WhenCacheIsProcessLocal_ThenRefusesBeforeOpeningStore(t *testing.T) {
	cfg := config.App{
		CacheBackend:   config.CacheMemory,
		DatabaseDriver: "no-such-driver",
	}

	err := run(context.Background(), cfg, logging.NewNoOpLogger())

	assert.ErrorIs(t, err, errProcessLocalCache)
}

func TestRun_WhenStoreCannotOpen_ThenReturnsError(t *testing.T) {
	cfg := config.App{
		CacheBackend:   config.CacheRedis,
		DatabaseDriver: "no-such-driver",
	}

	err := run(context.Background(), cfg, logging.NewNoOpLogger())

	assert.ErrorContains(t, err, "open trigger store")
}

func TestCheckSharedCache_AllowsRedis(t *testing.T) {
	assert.NoError(t, checkSharedCache(config.App{CacheBackend: config.CacheRedis}))
}
