package triggers

import (
	"context"
	"fmt"

	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/platform/events"
	"go.uber.org/zap"
)

const defaults = events.CollectionDefault

// ListDefaultTriggers returns all default triggers, possibly none.
func (s *Service) ListDefaultTriggers(ctx context.Context) ([]models.DefaultTrigger, error) {
	list, err := s.store.ListDefaultTriggers(ctx)
	if record(defaults, "list", err) != nil {
		return nil, fmt.Errorf("list default triggers: %w", err)
	}
	return list, nil
}

// CreateDefaultTrigger assigns a fresh id and stores the trigger. An id collision surfaces as
// storage.ErrTriggerConflict and is not retried.
func (s *Service) CreateDefaultTrigger(ctx context.Context, req models.CreateDefaultTriggerRequest) (models.DefaultTrigger, error) {
	if err := validateTime(req.Time); err != nil {
		return models.DefaultTrigger{}, record(defaults, "create", err)
	}
	if err := validateAC(req.AC); err != nil {
		return models.DefaultTrigger{}, record(defaults, "create", err)
	}

	trigger := models.DefaultTrigger{
		ID:   s.ids.NewID(),
		Time: req.Time,
		Temp: req.Temp,
		AC:   req.AC,
	}
	if err := s.mutated(ctx, defaults, "create", events.ActionCreated, trigger.ID, "",
		s.store.CreateDefaultTrigger(ctx, trigger)); err != nil {
		return models.DefaultTrigger{}, err
	}

	s.logger.Info("default trigger created",
		zap.String("trigger_id", trigger.ID),
		zap.String("time", trigger.Time.String()))
	return trigger, nil
}

// GetDefaultTrigger fetches one default trigger.
func (s *Service) GetDefaultTrigger(ctx context.Context, id string) (models.DefaultTrigger, error) {
	trigger, err := s.store.GetDefaultTrigger(ctx, id)
	return trigger, record(defaults, "get", err)
}

// UpdateDefaultTriggerTime replaces only the time of day.
func (s *Service) UpdateDefaultTriggerTime(ctx context.Context, id string, at models.TimeOfDay) error {
	if err := validateTime(at); err != nil {
		return record(defaults, "update_time", err)
	}
	return s.mutated(ctx, defaults, "update_time", events.ActionUpdated, id, FieldTime,
		s.store.UpdateDefaultTriggerTime(ctx, id, at))
}

// UpdateDefaultTriggerTemp replaces only the threshold temperature.
func (s *Service) UpdateDefaultTriggerTemp(ctx context.Context, id string, temp float64) error {
	return s.mutated(ctx, defaults, "update_temp", events.ActionUpdated, id, FieldTemp,
		s.store.UpdateDefaultTriggerTemp(ctx, id, temp))
}

// UpdateDefaultTriggerACMode replaces only the AC operation mode.
func (s *Service) UpdateDefaultTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error {
	if !mode.Valid() {
		return record(defaults, "update_ac_mode", NewValidationError("unsupported operation mode: %q", mode))
	}
	return s.mutated(ctx, defaults, "update_ac_mode", events.ActionUpdated, id, FieldACMode,
		s.store.UpdateDefaultTriggerACMode(ctx, id, mode))
}

// UpdateDefaultTriggerACTemp replaces only the AC target temperature.
func (s *Service) UpdateDefaultTriggerACTemp(ctx context.Context, id string, temp float64) error {
	return s.mutated(ctx, defaults, "update_ac_temp", events.ActionUpdated, id, FieldACTemp,
		s.store.UpdateDefaultTriggerACTemp(ctx, id, temp))
}

// DeleteDefaultTrigger removes the trigger.
func (s *Service) DeleteDefaultTrigger(ctx context.Context, id string) error {
	return s.mutated(ctx, defaults, "delete", events.ActionDeleted, id, "",
		s.store.DeleteDefaultTrigger(ctx, id))
}
