package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/auto-run-ac/internal/models"
)

const (
	dateTriggersTable  = "date_triggers"
	colTriggerDateTime = "trigger_date_time"
)

// ListDateTriggers returns every date trigger in the database's natural order.
func (c *Client) ListDateTriggers(ctx context.Context) ([]models.DateTrigger, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, trigger_date_time, trigger_temp, operation_mode, settings_temp FROM date_triggers`)
	if err != nil {
		return nil, fmt.Errorf("query date triggers: %w", err)
	}
	defer rows.Close()

	triggers := make([]models.DateTrigger, 0)
	for rows.Next() {
		t, err := scanDateTrigger(rows)
		if err != nil {
			return nil, fmt.Errorf("scan date trigger row: %w", err)
		}
		triggers = append(triggers, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate date triggers: %w", err)
	}
	return triggers, nil
}

// CreateDateTrigger inserts the trigger unless its id is taken (ErrTriggerConflict).
func (c *Client) CreateDateTrigger(ctx context.Context, t models.DateTrigger) error {
	return c.insertIfAbsent(ctx, dateTriggersTable, colTriggerDateTime,
		t.ID, toDBTime(t.DateTime), t.Temp, string(t.AC.Mode), t.AC.Temp)
}

// GetDateTrigger fetches one date trigger.
func (c *Client) GetDateTrigger(ctx context.Context, id string) (models.DateTrigger, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT id, trigger_date_time, trigger_temp, operation_mode, settings_temp FROM date_triggers WHERE id = ?`,
		id,
	)
	t, err := scanDateTrigger(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DateTrigger{}, ErrTriggerNotFound
		}
		return models.DateTrigger{}, fmt.Errorf("scan date trigger: %w", err)
	}
	return t, nil
}

// UpdateDateTriggerDateTime changes only the fire date-time.
func (c *Client) UpdateDateTriggerDateTime(ctx context.Context, id string, at time.Time) error {
	return c.updateColumn(ctx, dateTriggersTable, colTriggerDateTime, toDBTime(at), id)
}

// UpdateDateTriggerTemp changes only the threshold temperature.
func (c *Client) UpdateDateTriggerTemp(ctx context.Context, id string, temp float64) error {
	return c.updateColumn(ctx, dateTriggersTable, colTriggerTemp, temp, id)
}

// UpdateDateTriggerACMode changes only the operation mode.
func (c *Client) UpdateDateTriggerACMode(ctx context.Context, id string, mode models.OperationMode) error {
	return c.updateColumn(ctx, dateTriggersTable, colOperationMode, string(mode), id)
}

// UpdateDateTriggerACTemp changes only the AC target temperature.
func (c *Client) UpdateDateTriggerACTemp(ctx context.Context, id string, temp float64) error {
	return c.updateColumn(ctx, dateTriggersTable, colSettingsTemp, temp, id)
}

// DeleteDateTrigger removes a date trigger.
func (c *Client) DeleteDateTrigger(ctx context.Context, id string) error {
	return c.deleteRow(ctx, dateTriggersTable, id)
}

func scanDateTrigger(row rowScanner) (models.DateTrigger, error) {
	var t models.DateTrigger
	var at dbTime
	var mode string
	if err := row.Scan(&t.ID, &at, &t.Temp, &mode, &t.AC.Temp); err != nil {
		return models.DateTrigger{}, err
	}
	t.DateTime = at.Time
	t.AC.Mode = models.OperationMode(mode)
	return t, nil
}
