package handlers

import (
	"context"
	"time"

	"github.com/dhima/auto-run-ac/internal/models"
)

// DefaultTriggerService is the slice of the trigger service the default-trigger routes use.
type DefaultTriggerService interface {
	ListDefaultTriggers(ctx context.Context) ([]models.DefaultTrigger, error)
	CreateDefaultTrigger(ctx context.Context, req models.CreateDefaultTriggerRequest) (models.DefaultTrigger, error)
	GetDefaultTrigger(ctx context.Context, id string) (models.DefaultTrigger, error)
	UpdateDefaultTriggerTime(ctx context.Context, id string, at models.TimeOfDay) error
	UpdateDefaultTriggerTemp(ctx context.Context, id string, temp float64) error
	UpdateDefaultTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error
	UpdateDefaultTriggerACTemp(ctx context.Context, id string, temp float64) error
	DeleteDefaultTrigger(ctx context.Context, id string) error
}

// DateTriggerService is the slice of the trigger service the date-trigger routes use.
type DateTriggerService interface {
	ListDateTriggers(ctx context.Context) ([]models.DateTrigger, error)
	CreateDateTrigger(ctx context.Context, req models.CreateDateTriggerRequest) (models.DateTrigger, error)
	GetDateTrigger(ctx context.Context, id string) (models.DateTrigger, error)
	UpdateDateTriggerDateTime(ctx context.Context, id string, at time.Time) error
	UpdateDateTriggerTemp(ctx context.Context, id string, temp float64) error
	UpdateDateTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error
	UpdateDateTriggerACTemp(ctx context.Context, id string, temp float64) error
	DeleteDateTrigger(ctx context.Context, id string) error
}

// SnapshotCache is the trigger cache sync as seen by the cache routes.
type SnapshotCache interface {
	Read(ctx context.Context) (models.TriggerSnapshot, error)
	Validate(body []byte) []string
	Write(triggers []models.DefaultTrigger) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
