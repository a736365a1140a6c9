package triggers

import (
	"context"
	"errors"

	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/metrics"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/storage"
	"github.com/dhima/auto-run-ac/pkg/clock"
	"github.com/dhima/auto-run-ac/pkg/idgen"
	"github.com/dhima/auto-run-ac/platform/events"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Field names reported in change events, matching the update endpoints.
const (
	FieldTime     = "time"
	FieldDateTime = "dateTime"
	FieldTemp     = "temp"
	FieldACMode   = "acMode"
	FieldACTemp   = "acTemp"
)

// Service encapsulates trigger business logic for both collections.
type Service struct {
	store     TriggerStore
	ids       idgen.Generator
	publisher events.Publisher
	clock     clock.Clock
	logger    logging.Logger
}

// NewService creates a trigger service.
func NewService(store TriggerStore, ids idgen.Generator, publisher events.Publisher, logger logging.Logger) *Service {
	return NewServiceWithClock(store, ids, publisher, logger, clock.RealClock{})
}

// NewServiceWithClock creates a trigger service with a custom clock (useful for testing).
func NewServiceWithClock(store TriggerStore, ids idgen.Generator, publisher events.Publisher, logger logging.Logger, clk clock.Clock) *Service {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Service{
		store:     store,
		ids:       ids,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

func validateAC(ac models.ACSettings) error {
	if !ac.Mode.Valid() {
		return NewValidationError("unsupported operation mode: %q", ac.Mode)
	}
	return nil
}

func validateTime(at models.TimeOfDay) error {
	if err := at.Validate(); err != nil {
		return NewValidationError("%v", err)
	}
	return nil
}

// record counts the outcome of a store call and passes err through.
func record(collection events.Collection, operation string, err error) error {
	outcome := metrics.OutcomeSuccess
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrTriggerNotFound):
		outcome = metrics.OutcomeNotFound
	case errors.Is(err, storage.ErrTriggerConflict):
		outcome = metrics.OutcomeConflict
	case IsValidationError(err):
		outcome = metrics.OutcomeInvalid
	default:
		outcome = metrics.OutcomeError
	}
	metrics.RecordTriggerOperation(string(collection), operation, outcome)
	return err
}

// announce publishes a change event. Publishing is best effort: the mutation already happened.
func (s *Service) announce(ctx context.Context, collection events.Collection, action events.Action, id, field string) {
	event := events.TriggerEvent{
		EventID:    uuid.New().String(),
		Collection: collection,
		Action:     action,
		TriggerID:  id,
		Field:      field,
		OccurredAt: s.clock.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish trigger change",
			zap.String("trigger_id", id),
			zap.String("collection", string(collection)),
			zap.String("action", string(action)),
			zap.Error(err))
	}
}

// mutated records the outcome and, on success, announces the change.
func (s *Service) mutated(ctx context.Context, collection events.Collection, operation string, action events.Action, id, field string, err error) error {
	if record(collection, operation, err) != nil {
		return err
	}
	s.announce(ctx, collection, action, id, field)
	return nil
}
