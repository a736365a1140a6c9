package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return NewMySQLClient(db), mock
}

func TestMySQL_CreateDefaultTrigger_UsesPlainInsert(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`^INSERT INTO default_triggers \(id, trigger_time, trigger_temp, operation_mode, settings_temp\) VALUES \(\?, \?, \?, \?, \?\)$`).
		WithArgs("id-1", "07:30:00", 26.0, "cool", 24.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := c.CreateDefaultTrigger(context.Background(), morningWithID("id-1"))

	assert.NoError(t, err)
}

func TestMySQL_CreateDefaultTrigger_WhenDuplicateKey_ThenConflict(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`INSERT INTO default_triggers`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'id-1' for key 'PRIMARY'"})

	err := c.CreateDefaultTrigger(context.Background(), morningWithID("id-1"))

	assert.ErrorIs(t, err, ErrTriggerConflict)
}

func TestMySQL_CreateDateTrigger_WhenOtherDriverError_ThenWrappedNotConflict(t *testing.T) {
	c, mock := newMock(t)
	rangeErr := &mysql.MySQLError{Number: 1292, Message: "Incorrect datetime value"}
	mock.ExpectExec(`INSERT INTO date_triggers`).
		WillReturnError(rangeErr)

	err := c.CreateDateTrigger(context.Background(), models.DateTrigger{
		ID:       "id-3",
		DateTime: time.Date(500, 1, 1, 0, 0, 0, 0, time.UTC),
		Temp:     20,
		AC:       models.ACSettings{Mode: models.OperationModeCool, Temp: 24},
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTriggerConflict)
	var got *mysql.MySQLError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, uint16(1292), got.Number)
	assert.Contains(t, err.Error(), "insert into date_triggers")
}

func TestMySQL_CreateDateTrigger_StoresUTC(t *testing.T) {
	c, mock := newMock(t)
	loc := time.FixedZone("JST", 9*60*60)
	at := time.Date(2025, 7, 1, 16, 30, 0, 0, loc)
	mock.ExpectExec(`INSERT INTO date_triggers \(id, trigger_date_time,`).
		WithArgs("id-2", at.UTC(), 28.0, "heat", 22.0).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := c.CreateDateTrigger(context.Background(), models.DateTrigger{
		ID:       "id-2",
		DateTime: at,
		Temp:     28,
		AC:       models.ACSettings{Mode: models.OperationModeHeat, Temp: 22},
	})

	assert.NoError(t, err)
}

func TestMySQL_GetDefaultTrigger_ScansTimeColumn(t *testing.T) {
	c, mock := newMock(t)
	rows := sqlmock.NewRows([]string{"id", "trigger_time", "trigger_temp", "operation_mode", "settings_temp"}).
		AddRow("id-1", []byte("07:30:00"), 26.0, "cool", 24.0)
	mock.ExpectQuery(`SELECT id, trigger_time, trigger_temp, operation_mode, settings_temp FROM default_triggers WHERE id = \?`).
		WithArgs("id-1").
		WillReturnRows(rows)

	got, err := c.GetDefaultTrigger(context.Background(), "id-1")

	require.NoError(t, err)
	assert.Equal(t, morningWithID("id-1"), got)
}

func TestMySQL_GetDefaultTrigger_WhenNoRows_ThenNotFound(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectQuery(`FROM default_triggers WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trigger_time", "trigger_temp", "operation_mode", "settings_temp"}))

	_, err := c.GetDefaultTrigger(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrTriggerNotFound)
}

func TestMySQL_GetDateTrigger_WhenNoRows_ThenNotFound(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectQuery(`FROM date_triggers WHERE id = \?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "trigger_date_time", "trigger_temp", "operation_mode", "settings_temp"}))

	_, err := c.GetDateTrigger(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrTriggerNotFound)
}

func TestMySQL_UpdateDefaultTriggerACMode_UpdatesSingleColumn(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`UPDATE default_triggers SET operation_mode = \? WHERE id = \?`).
		WithArgs("fan", "id-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, c.UpdateDefaultTriggerACMode(context.Background(), "id-1", models.OperationModeFan))
}

func TestMySQL_UpdateDateTriggerTemp_WhenNoRowMatched_ThenNotFound(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`UPDATE date_triggers SET trigger_temp = \? WHERE id = \?`).
		WithArgs(30.0, "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, c.UpdateDateTriggerTemp(context.Background(), "missing", 30), ErrTriggerNotFound)
}

func TestMySQL_DeleteDefaultTrigger_PropagatesDriverError(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`DELETE FROM default_triggers WHERE id = \?`).
		WithArgs("id-1").
		WillReturnError(errors.New("connection reset"))

	err := c.DeleteDefaultTrigger(context.Background(), "id-1")

	assert.ErrorContains(t, err, "connection reset")
	assert.NotErrorIs(t, err, ErrTriggerNotFound)
}

func TestMySQL_ListDateTriggers_ScansRows(t *testing.T) {
	c, mock := newMock(t)
	at := time.Date(2025, 7, 1, 7, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "trigger_date_time", "trigger_temp", "operation_mode", "settings_temp"}).
		AddRow("a", at, 28.0, "cool", 24.0).
		AddRow("b", at.Add(time.Hour), 29.0, "dry", 25.0)
	mock.ExpectQuery(`SELECT id, trigger_date_time, trigger_temp, operation_mode, settings_temp FROM date_triggers`).
		WillReturnRows(rows)

	got, err := c.ListDateTriggers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.True(t, at.Equal(got[0].DateTime))
	assert.Equal(t, models.OperationModeDry, got[1].AC.Mode)
}

func TestMySQL_EnsureSchema_CreatesBothTables(t *testing.T) {
	c, mock := newMock(t)
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS default_triggers`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`(?s)CREATE TABLE IF NOT EXISTS date_triggers \(.*DATETIME\(6\)`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, c.EnsureSchema(context.Background()))
}

func TestDBTime_Scan_ParsesSQLiteText(t *testing.T) {
	var v dbTime

	require.NoError(t, v.Scan("2025-07-01 07:30:00+00:00"))

	assert.True(t, time.Date(2025, 7, 1, 7, 30, 0, 0, time.UTC).Equal(v.Time))
	assert.Error(t, v.Scan("yesterday"))
}

func morningWithID(id string) models.DefaultTrigger {
	t := morning()
	t.ID = id
	return t
}
