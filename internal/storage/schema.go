package storage

import (
	"context"
	"fmt"
)

func (c *Client) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS default_triggers (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	trigger_time TIME NOT NULL,
	trigger_temp DOUBLE NOT NULL,
	operation_mode VARCHAR(16) NOT NULL,
	settings_temp DOUBLE NOT NULL
)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS date_triggers (
	id VARCHAR(64) NOT NULL PRIMARY KEY,
	trigger_date_time %s NOT NULL,
	trigger_temp DOUBLE NOT NULL,
	operation_mode VARCHAR(16) NOT NULL,
	settings_temp DOUBLE NOT NULL
)`, c.dialect.dateTimeType()),
	}
}

// EnsureSchema creates the trigger tables if they do not exist yet.
func (c *Client) EnsureSchema(ctx context.Context) error {
	for i, stmt := range c.schema() {
		if _, err := c.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
