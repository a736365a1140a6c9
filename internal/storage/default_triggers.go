package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dhima/auto-run-ac/internal/models"
)

const (
	defaultTriggersTable = "default_triggers"
	colTriggerTime       = "trigger_time"
)

// ListDefaultTriggers returns every default trigger in the database's natural order.
func (c *Client) ListDefaultTriggers(ctx context.Context) ([]models.DefaultTrigger, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, trigger_time, trigger_temp, operation_mode, settings_temp FROM default_triggers`)
	if err != nil {
		return nil, fmt.Errorf("query default triggers: %w", err)
	}
	defer rows.Close()

	triggers := make([]models.DefaultTrigger, 0)
	for rows.Next() {
		t, err := scanDefaultTrigger(rows)
		if err != nil {
			return nil, fmt.Errorf("scan default trigger row: %w", err)
		}
		triggers = append(triggers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate default triggers: %w", err)
	}
	return triggers, nil
}

// CreateDefaultTrigger inserts the trigger unless its id is taken, in which case
// ErrTriggerConflict is returned and nothing is written.
func (c *Client) CreateDefaultTrigger(ctx context.Context, t models.DefaultTrigger) error {
	return c.insertIfAbsent(ctx, defaultTriggersTable, colTriggerTime,
		t.ID, t.Time, t.Temp, string(t.AC.Mode), t.AC.Temp)
}

// GetDefaultTrigger fetches one default trigger.
func (c *Client) GetDefaultTrigger(ctx context.Context, id string) (models.DefaultTrigger, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, trigger_time, trigger_temp, operation_mode, settings_temp FROM default_triggers WHERE id = ?`,
		id,
	)
	t, err := scanDefaultTrigger(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DefaultTrigger{}, ErrTriggerNotFound
		}
		return models.DefaultTrigger{}, fmt.Errorf("scan default trigger: %w", err)
	}
	return t, nil
}

// UpdateDefaultTriggerTime changes only the time of day.
func (c *Client) UpdateDefaultTriggerTime(ctx context.Context, id string, at models.TimeOfDay) error {
	return c.updateColumn(ctx, defaultTriggersTable, colTriggerTime, at, id)
}

// UpdateDefaultTriggerTemp changes only the threshold temperature.
func (c *Client) UpdateDefaultTriggerTemp(ctx context.Context, id string, temp float64) error {
	return c.updateColumn(ctx, defaultTriggersTable, colTriggerTemp, temp, id)
}

// UpdateDefaultTriggerACMode changes only the operation mode.
func (c *Client) UpdateDefaultTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error {
	return c.updateColumn(ctx, defaultTriggersTable, colOperationMode, string(mode), id)
}

// UpdateDefaultTriggerACTemp changes only the AC target temperature.
func (c *Client) UpdateDefaultTriggerACTemp(ctx context.Context, id string, temp float64) error {
	return c.updateColumn(ctx, defaultTriggersTable, colSettingsTemp, temp, id)
}

// DeleteDefaultTrigger removes a default trigger.
func (c *Client) DeleteDefaultTrigger(ctx context.Context, id string) error {
	return c.deleteRow(ctx, defaultTriggersTable, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDefaultTrigger(row rowScanner) (models.DefaultTrigger, error) {
	var t models.DefaultTrigger
	var mode string
	if err := row.Scan(&t.ID, &t.Time, &t.Temp, &mode, &t.AC.Temp); err != nil {
		return models.DefaultTrigger{}, err
	}
	t.AC.Mode = models.OperationMode(mode)
	return t, nil
}
