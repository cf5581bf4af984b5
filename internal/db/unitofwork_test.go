package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/rostercost/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = database.Exec(`INSERT INTO shift_types (code, name, is_work_shift, created_at, updated_at)
		VALUES ('1', 'Morning', 1, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)

	return db.NewSQLiteUnitOfWork(database)
}

// shiftName reads a shift type name through a fresh transaction.
func shiftName(t *testing.T, uow *db.SQLiteUnitOfWork, code string) (string, bool) {
	t.Helper()
	var name string
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT name FROM shift_types WHERE code = ?`, code).Scan(&name); err != nil {
			return nil
		}
		found = true
		return nil
	})
	require.NoError(t, err)
	return name, found
}

func insertShift(ctx context.Context, tx db.DBTX, code, name string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO shift_types (code, name, created_at, updated_at)
		VALUES (?, ?, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`, code, name)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertShift(ctx, tx, "OFF", "Day off")
	})
	require.NoError(t, err)

	name, found := shiftName(t, uow, "OFF")
	assert.True(t, found, "row should exist after commit")
	assert.Equal(t, "Day off", name)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `UPDATE shift_types SET name = 'Changed' WHERE code = '1'`); err != nil {
			return err
		}
		if err := insertShift(ctx, tx, "ลา", "Leave"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")

	_, found := shiftName(t, uow, "ลา")
	assert.False(t, found, "insert should not survive rollback")
	name, _ := shiftName(t, uow, "1")
	assert.Equal(t, "Morning", name, "update should not survive rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertShift(ctx, tx, "ขาด", "Absent")
			panic("boom")
		})
	})

	_, found := shiftName(t, uow, "ขาด")
	assert.False(t, found, "row should not exist after panic rollback")
}
