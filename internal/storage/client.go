package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

var (
	// ErrTriggerNotFound is returned when no trigger has the requested id.
	ErrTriggerNotFound = errors.New("trigger not found")
	// ErrTriggerConflict is returned when an insert found a row with the same id already present.
	ErrTriggerConflict = errors.New("trigger already exists")
)

// Dialect selects the SQL flavour spoken by the underlying database.
type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

// insertIfAbsent is the dialect's single-statement "insert unless the primary key exists".
// MySQL reports the collision as error 1062; SQLite skips the row and affects nothing.
func (d Dialect) insertIfAbsent(table, whenColumn string) string {
	query := fmt.Sprintf(
		"INSERT INTO %s (id, %s, trigger_temp, operation_mode, settings_temp) VALUES (?, ?, ?, ?, ?)",
		table, whenColumn,
	)
	if d == DialectSQLite {
		query += " ON CONFLICT(id) DO NOTHING"
	}
	return query
}

func (d Dialect) dateTimeType() string {
	if d == DialectSQLite {
		return "DATETIME"
	}
	return "DATETIME(6)"
}

// Client wraps direct SQL access for default and date triggers.
type Client struct {
	db      *sql.DB
	dialect Dialect
}

// NewMySQLClient wires a MySQL sql.DB. The DSN must set clientFoundRows=true and parseTime=true;
// Open does that for you.
func NewMySQLClient(db *sql.DB) *Client {
	return &Client{db: db, dialect: DialectMySQL}
}

// NewSQLiteClient wires a SQLite sql.DB.
func NewSQLiteClient(db *sql.DB) *Client {
	return &Client{db: db, dialect: DialectSQLite}
}

// DB exposes the pool for health checks and shutdown.
func (c *Client) DB() *sql.DB { return c.db }

// Close closes the pool.
func (c *Client) Close() error { return c.db.Close() }

// Open connects to the configured database, applies the schema and returns a ready client.
func Open(ctx context.Context, driver, dsn string) (*Client, error) {
	switch Dialect(driver) {
	case DialectMySQL:
		return openMySQL(ctx, dsn)
	case DialectSQLite:
		return openSQLite(ctx, dsn)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

func openMySQL(ctx context.Context, dsn string) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("DATABASE_URL is required for mysql")
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	// Updates that match a row but leave it unchanged must still count as found.
	cfg.ClientFoundRows = true
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}

	db.SetMaxIdleConns(5)
	db.SetMaxOpenConns(20)
	db.SetConnMaxLifetime(60 * time.Minute)

	return bootstrap(ctx, NewMySQLClient(db))
}

func openSQLite(ctx context.Context, dsn string) (*Client, error) {
	if dsn == "" {
		dsn = "auto-run-ac.db"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", dsn, err)
	}

	// SQLite prefers a single writer; this also keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA busy_timeout = 5000;",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	return bootstrap(ctx, NewSQLiteClient(db))
}

func bootstrap(ctx context.Context, c *Client) (*Client, error) {
	if err := c.db.PingContext(ctx); err != nil {
		_ = c.db.Close()
		return nil, fmt.Errorf("ping %s: %w", c.dialect, err)
	}
	if err := c.EnsureSchema(ctx); err != nil {
		_ = c.db.Close()
		return nil, err
	}
	return c, nil
}

// Ping checks connectivity.
func (c *Client) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
