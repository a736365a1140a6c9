package triggers

import (
	"context"
	"time"

	"github.com/dhima/auto-run-ac/internal/models"
)

// TriggerStore defines the storage methods required by the trigger service.
type TriggerStore interface {
	ListDefaultTriggers(ctx context.Context) ([]models.DefaultTrigger, error)
	CreateDefaultTrigger(ctx context.Context, trigger models.DefaultTrigger) error
	GetDefaultTrigger(ctx context.Context, id string) (models.DefaultTrigger, error)
	UpdateDefaultTriggerTime(ctx context.Context, id string, at models.TimeOfDay) error
	UpdateDefaultTriggerTemp(ctx context.Context, id string, temp float64) error
	UpdateDefaultTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error
	UpdateDefaultTriggerACTemp(ctx context.Context, id string, temp float64) error
	DeleteDefaultTrigger(ctx context.Context, id string) error

	ListDateTriggers(ctx context.Context) ([]models.DateTrigger, error)
	CreateDateTrigger(ctx context.Context, trigger models.DateTrigger) error
	GetDateTrigger(ctx context.Context, id string) (models.DateTrigger, error)
	UpdateDateTriggerDateTime(ctx context.Context, id string, at time.Time) error
	UpdateDateTriggerTemp(ctx context.Context, id string, temp float64) error
	UpdateDateTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error
	UpdateDateTriggerACTemp(ctx context.Context, id string, temp float64) error
	DeleteDateTrigger(ctx context.Context, id string) error
}
