package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/metrics"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/validation"
	"github.com/dhima/auto-run-ac/pkg/clock"
	"github.com/dhima/auto-run-ac/platform/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Key is where the default-trigger snapshot lives in the KV store.
const Key = "defaultTriggers"

var (
	// ErrCorruptSnapshot means the stored value exists but does not match the snapshot schema.
	ErrCorruptSnapshot = errors.New("stored trigger snapshot is corrupt")
	// ErrClosed is returned by Write after Close.
	ErrClosed = errors.New("snapshot writer is closed")
)

// Options tune the Sync.
type Options struct {
	// WriteTimeout bounds each KV write. Zero means 5s.
	WriteTimeout time.Duration
	Clock        clock.Clock
}

type storedSnapshot struct {
	Triggers []models.DefaultTrigger `json:"triggers"`
}

// Sync reads and writes the denormalised default-trigger snapshot. Writes are handed to a single
// background worker and coalesce: only the most recent pending value is written.
type Sync struct {
	kv        KV
	publisher events.Publisher
	logger    logging.Logger
	clock     clock.Clock
	timeout   time.Duration

	mu       sync.Mutex
	pending  []byte
	queued   uint64 // writes accepted
	attempts uint64 // writes the worker has finished with
	closed   bool
	started  bool
	wake     chan struct{}
	settled  *sync.Cond
	done     chan struct{}
}

// NewSync builds a Sync. Call Start before writing.
func NewSync(kv KV, publisher events.Publisher, logger logging.Logger, opts Options) *Sync {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	if opts.WriteTimeout <= 0 {
		opts.WriteTimeout = 5 * time.Second
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	s := &Sync{
		kv:        kv,
		publisher: publisher,
		logger:    logger,
		clock:     opts.Clock,
		timeout:   opts.WriteTimeout,
		wake:      make(chan struct{}, 1),
		done:      make(chan struct{}),
	}
	s.settled = sync.NewCond(&s.mu)
	return s
}

// Validate checks a candidate snapshot body and returns the schema messages, if any.
func (s *Sync) Validate(body []byte) []string {
	return validation.Snapshot.Validate(body)
}

// Read returns the current snapshot. A missing key reads as an empty snapshot; a value that
// fails the schema is reported as ErrCorruptSnapshot and never repaired.
func (s *Sync) Read(ctx context.Context) (models.TriggerSnapshot, error) {
	raw, found, err := s.kv.Get(ctx, Key)
	if err != nil {
		return models.TriggerSnapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	if !found {
		return models.NewTriggerSnapshot(nil), nil
	}

	if messages := validation.Snapshot.Validate(raw); len(messages) > 0 {
		return models.TriggerSnapshot{}, fmt.Errorf("%w: %s", ErrCorruptSnapshot, strings.Join(messages, "; "))
	}

	var stored storedSnapshot
	if err := json.Unmarshal(raw, &stored); err != nil {
		return models.TriggerSnapshot{}, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	return models.NewTriggerSnapshot(stored.Triggers), nil
}

// Write schedules the triggers to replace the stored snapshot and returns without waiting.
func (s *Sync) Write(triggers []models.DefaultTrigger) error {
	if triggers == nil {
		triggers = []models.DefaultTrigger{}
	}
	raw, err := json.Marshal(storedSnapshot{Triggers: triggers})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.pending = raw
	s.queued++
	select {
	case s.wake <- struct{}{}:
	default:
	}
	return nil
}

// Start launches the background writer. It stops when Close is called.
func (s *Sync) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	go s.run()
}

func (s *Sync) run() {
	defer close(s.done)
	for {
		s.mu.Lock()
		for s.pending == nil && !s.closed {
			s.mu.Unlock()
			<-s.wake
			s.mu.Lock()
		}
		if s.pending == nil && s.closed {
			s.mu.Unlock()
			return
		}
		raw := s.pending
		target := s.queued
		s.pending = nil
		s.mu.Unlock()

		s.store(raw)

		s.mu.Lock()
		s.attempts = target
		s.settled.Broadcast()
		s.mu.Unlock()
	}
}

func (s *Sync) store(raw []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.kv.Set(ctx, Key, raw); err != nil {
		metrics.RecordSnapshotWrite(metrics.OutcomeError)
		s.logger.Error("failed to write trigger snapshot", zap.Error(err))
		return
	}
	metrics.RecordSnapshotWrite(metrics.OutcomeSuccess)
	s.logger.Debug("trigger snapshot written", zap.Int("bytes", len(raw)))

	if err := s.publisher.Publish(ctx, events.TriggerEvent{
		EventID:    uuid.New().String(),
		Collection: events.CollectionSnapshot,
		Action:     events.ActionWritten,
		OccurredAt: s.clock.Now().UTC(),
	}); err != nil {
		s.logger.Warn("failed to publish snapshot change", zap.Error(err))
	}
}

// Flush blocks until every write accepted so far has been attempted, or ctx ends.
func (s *Sync) Flush(ctx context.Context) error {
	s.mu.Lock()
	target := s.queued
	s.mu.Unlock()

	waited := make(chan struct{})
	go func() {
		s.mu.Lock()
		for s.attempts < target && s.started && ctx.Err() == nil {
			s.settled.Wait()
		}
		s.mu.Unlock()
		close(waited)
	}()

	select {
	case <-waited:
		return nil
	case <-ctx.Done():
		s.mu.Lock()
		s.settled.Broadcast()
		s.mu.Unlock()
		return ctx.Err()
	}
}

// Close stops accepting writes, lets the worker store the last pending value and waits for it
// to exit or for ctx to end.
func (s *Sync) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	started := s.started
	s.settled.Broadcast()
	s.mu.Unlock()

	if !started {
		return nil
	}
	select {
	case s.wake <- struct{}{}:
	default:
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
