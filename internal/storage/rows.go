package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Column names shared by both trigger tables. Only these constants are ever interpolated
// into SQL; ids and values always travel as bind parameters.
const (
	colTriggerTemp   = "trigger_temp"
	colOperationMode = "operation_mode"
	colSettingsTemp  = "settings_temp"
)

// mysqlDuplicateEntry is ER_DUP_ENTRY.
const mysqlDuplicateEntry = 1062

// insertIfAbsent inserts one row and reports ErrTriggerConflict when the primary key was
// already taken. Any other failure is returned as is.
func (c *Client) insertIfAbsent(ctx context.Context, table, whenColumn string, args ...any) error {
	res, err := c.db.ExecContext(ctx, c.dialect.insertIfAbsent(table, whenColumn), args...)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrTriggerConflict
		}
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return expectOneRow(res, ErrTriggerConflict)
}

func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// updateColumn sets one column of one row.
func (c *Client) updateColumn(ctx context.Context, table, column string, value any, id string) error {
	query := fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", table, column)
	res, err := c.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("update %s.%s: %w", table, column, err)
	}
	return expectOneRow(res, ErrTriggerNotFound)
}

func (c *Client) deleteRow(ctx context.Context, table, id string) error {
	res, err := c.db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return expectOneRow(res, ErrTriggerNotFound)
}

func expectOneRow(res sql.Result, none error) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return none
	}
	return nil
}

// dbTime scans DATETIME columns from either driver: MySQL with parseTime hands over a
// time.Time, SQLite may hand over the stored text.
type dbTime struct{ time.Time }

var dbTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
}

func (t *dbTime) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("scan datetime: unsupported type %T", src)
	}
	for _, layout := range dbTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("scan datetime: unrecognised value %q", s)
}

// toDBTime normalises a date-time to what the DATETIME(6) column can hold.
func toDBTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
