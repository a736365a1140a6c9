package scheduler

import (
	"context"

	"github.com/dhima/auto-run-ac/internal/models"
)

// TriggerLister is the read side of the trigger store the refresher needs.
type TriggerLister interface {
	ListDefaultTriggers(ctx context.Context) ([]models.DefaultTrigger, error)
}

// SnapshotWriter accepts a full replacement of the cached snapshot.
type SnapshotWriter interface {
	Write(triggers []models.DefaultTrigger) error
}
