package triggers

import (
	"context"
	"fmt"
	"time"

	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/platform/events"
	"go.uber.org/zap"
)

const dates = events.CollectionDate

// Bounds of a DATETIME column.
const (
	minDateTimeYear = 1000
	maxDateTimeYear = 9999
)

func validateDateTime(at time.Time) error {
	if at.IsZero() {
		return NewValidationError("dateTime is required")
	}
	if year := at.UTC().Year(); year < minDateTimeYear || year > maxDateTimeYear {
		return NewValidationError("dateTime year must be between %d and %d, got %d",
			minDateTimeYear, maxDateTimeYear, year)
	}
	return nil
}

// normalizeDateTime is the form a date-time is stored and returned in: UTC at microsecond
// precision.
func normalizeDateTime(at time.Time) time.Time {
	return at.UTC().Truncate(time.Microsecond)
}

// ListDateTriggers returns all date triggers, possibly none.
func (s *Service) ListDateTriggers(ctx context.Context) ([]models.DateTrigger, error) {
	list, err := s.store.ListDateTriggers(ctx)
	if record(dates, "list", err) != nil {
		return nil, fmt.Errorf("list date triggers: %w", err)
	}
	return list, nil
}

// CreateDateTrigger assigns a fresh id and stores the trigger. The returned date-time is the
// stored one: UTC, truncated to microseconds.
func (s *Service) CreateDateTrigger(ctx context.Context, req models.CreateDateTriggerRequest) (models.DateTrigger, error) {
	if err := validateDateTime(req.DateTime); err != nil {
		return models.DateTrigger{}, record(dates, "create", err)
	}
	if err := validateAC(req.AC); err != nil {
		return models.DateTrigger{}, record(dates, "create", err)
	}

	trigger := models.DateTrigger{
		ID:       s.ids.NewID(),
		DateTime: normalizeDateTime(req.DateTime),
		Temp:     req.Temp,
		AC:       req.AC,
	}
	if err := s.mutated(ctx, dates, "create", events.ActionCreated, trigger.ID, "",
		s.store.CreateDateTrigger(ctx, trigger)); err != nil {
		return models.DateTrigger{}, err
	}

	s.logger.Info("date trigger created",
		zap.String("trigger_id", trigger.ID),
		zap.Time("date_time", trigger.DateTime))
	return trigger, nil
}

// GetDateTrigger fetches one date trigger.
func (s *Service) GetDateTrigger(ctx context.Context, id string) (models.DateTrigger, error) {
	trigger, err := s.store.GetDateTrigger(ctx, id)
	return trigger, record(dates, "get", err)
}

// UpdateDateTriggerDateTime replaces only the fire date-time, normalized as on create.
func (s *Service) UpdateDateTriggerDateTime(ctx context.Context, id string, at time.Time) error {
	if err := validateDateTime(at); err != nil {
		return record(dates, "update_date_time", err)
	}
	return s.mutated(ctx, dates, "update_date_time", events.ActionUpdated, id, FieldDateTime,
		s.store.UpdateDateTriggerDateTime(ctx, id, normalizeDateTime(at)))
}

// UpdateDateTriggerTemp replaces only the threshold temperature.
func (s *Service) UpdateDateTriggerTemp(ctx context.Context, id string, temp float64) error {
	return s.mutated(ctx, dates, "update_temp", events.ActionUpdated, id, FieldTemp,
		s.store.UpdateDateTriggerTemp(ctx, id, temp))
}

// UpdateDateTriggerACMode replaces only the AC mode.
func (s *Service) UpdateDateTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error {
	if !mode.Valid() {
		return record(dates, "update_ac_mode", NewValidationError("unsupported operation mode: %q", mode))
	}
	return s.mutated(ctx, dates, "update_ac_mode", events.ActionUpdated, id, FieldACMode,
		s.store.UpdateDateTriggerACMode(ctx, id, mode))
}

// UpdateDateTriggerACTemp replaces only the AC target temperature.
func (s *Service) UpdateDateTriggerACTemp(ctx context.Context, id string, temp float64) error {
	return s.mutated(ctx, dates, "update_ac_temp", events.ActionUpdated, id, FieldACTemp,
		s.store.UpdateDateTriggerACTemp(ctx, id, temp))
}

// DeleteDateTrigger removes the trigger.
func (s *Service) DeleteDateTrigger(ctx context.Context, id string) error {
	return s.mutated(ctx, dates, "delete", events.ActionDeleted, id, "",
		s.store.DeleteDateTrigger(ctx, id))
}
