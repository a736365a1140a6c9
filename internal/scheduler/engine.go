package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/metrics"
	"github.com/dhima/auto-run-ac/pkg/clock"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Engine periodically copies the default triggers from the store into the snapshot cache.
type Engine struct {
	spec    string
	timeout time.Duration
	lister  TriggerLister
	writer  SnapshotWriter
	logger  logging.Logger
	clock   clock.Clock
}

// NewEngine constructs a refresher. The cron spec is validated up front.
func NewEngine(spec string, lister TriggerLister, writer SnapshotWriter, logger logging.Logger) (*Engine, error) {
	return NewEngineWithClock(spec, lister, writer, logger, clock.RealClock{})
}

// NewEngineWithClock constructs a refresher with a custom clock (useful for testing).
func NewEngineWithClock(spec string, lister TriggerLister, writer SnapshotWriter, logger logging.Logger, clk clock.Clock) (*Engine, error) {
	if _, err := ParseSpec(spec); err != nil {
		return nil, err
	}
	return &Engine{
		spec:    spec,
		timeout: 30 * time.Second,
		lister:  lister,
		writer:  writer,
		logger:  logger,
		clock:   clk,
	}, nil
}

// RunOnce lists every default trigger and hands the set to the snapshot writer.
func (e *Engine) RunOnce(ctx context.Context) error {
	triggers, err := e.lister.ListDefaultTriggers(ctx)
	if err != nil {
		metrics.RecordSnapshotRefresh(metrics.OutcomeError)
		return fmt.Errorf("list default triggers: %w", err)
	}
	if err := e.writer.Write(triggers); err != nil {
		metrics.RecordSnapshotRefresh(metrics.OutcomeError)
		return fmt.Errorf("write snapshot: %w", err)
	}
	metrics.RecordSnapshotRefresh(metrics.OutcomeSuccess)
	e.logger.Info("snapshot refresh queued", zap.Int("trigger_count", len(triggers)))
	return nil
}

// Run refreshes once immediately, then on every tick of the cron spec until ctx is cancelled.
// A refresh still in flight when ctx ends is allowed to finish.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.refresh(ctx); err != nil {
		e.logger.Warn("initial snapshot refresh failed", zap.Error(err))
	}

	c := cron.New(cron.WithParser(specParser), cron.WithLocation(time.UTC))
	if _, err := c.AddFunc(e.spec, func() {
		if err := e.refresh(ctx); err != nil {
			e.logger.Error("snapshot refresh failed", zap.Error(err))
		}
	}); err != nil {
		return fmt.Errorf("schedule refresh: %w", err)
	}

	c.Start()
	if next, err := NextRun(e.spec, e.clock.Now()); err == nil {
		e.logger.Info("snapshot refresher started",
			zap.String("spec", e.spec),
			zap.Time("next_run", next))
	}

	<-ctx.Done()
	<-c.Stop().Done()
	e.logger.Info("snapshot refresher stopped")
	return ctx.Err()
}

func (e *Engine) refresh(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	runCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()
	return e.RunOnce(runCtx)
}
