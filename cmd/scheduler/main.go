package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dhima/auto-run-ac/internal/api"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/scheduler"
	"github.com/dhima/auto-run-ac/internal/snapshot"
	"github.com/dhima/auto-run-ac/internal/storage"
	"github.com/dhima/auto-run-ac/pkg/config"
	"go.uber.org/zap"
)

// errProcessLocalCache rejects a cache the API process cannot see.
var errProcessLocalCache = errors.New(`CACHE_BACKEND=memory is process-local; the refresher needs a shared backend such as "redis"`)

// The scheduler binary keeps the snapshot cache in step with the trigger store on a cron spec.
func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("initialize logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, logger)
	stop()
	_ = logger.Sync()
	if err != nil {
		log.Fatalf("snapshot refresher: %v", err)
	}
}

// run owns every resource it opens and releases them before returning.
func run(ctx context.Context, cfg config.App, logger logging.Logger) error {
	if err := checkSharedCache(cfg); err != nil {
		return err
	}

	store, err := storage.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open trigger store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database connection", zap.Error(err))
		}
	}()

	kv, err := api.OpenKV(cfg)
	if err != nil {
		return err
	}
	defer closeQuietly(kv)

	publisher := api.NewPublisher(cfg, logger)
	defer closeQuietly(publisher)

	cache := snapshot.NewSync(kv, publisher, logger, snapshot.Options{WriteTimeout: cfg.CacheWriteTimeout})
	cache.Start()
	defer func() {
		drainCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := cache.Close(drainCtx); err != nil {
			logger.Warn("snapshot writer did not drain", zap.Error(err))
		}
	}()

	engine, err := scheduler.NewEngine(cfg.SnapshotRefreshSpec, store, cache, logger)
	if err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", cfg.SnapshotRefreshSpec, err)
	}

	logger.Info("snapshot refresher started", zap.String("spec", cfg.SnapshotRefreshSpec))
	if err := engine.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("refresher stopped: %w", err)
	}
	logger.Info("snapshot refresher stopped")
	return nil
}

func checkSharedCache(cfg config.App) error {
	if cfg.CacheBackend == config.CacheMemory {
		return errProcessLocalCache
	}
	return nil
}

func closeQuietly(v any) {
	if closer, ok := v.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
