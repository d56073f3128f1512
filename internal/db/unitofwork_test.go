package db_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func insertRow(ctx context.Context, tx db.DBTX, item string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO stock_health (location, item, stock_status) VALUES ('Ward A', ?, 'Healthy')`, item)
	return err
}

func rowExists(t *testing.T, uow *db.SQLiteUnitOfWork, item string) bool {
	t.Helper()
	var n int
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM stock_health WHERE item = ?`, item).Scan(&n)
	})
	require.NoError(t, err)
	return n > 0
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		return insertRow(ctx, tx, "Insulin")
	})
	require.NoError(t, err)
	assert.True(t, rowExists(t, uow, "Insulin"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := openTestUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertRow(ctx, tx, "Oxygen"); err != nil {
			return err
		}
		return fmt.Errorf("deliberate failure")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliberate failure")
	assert.False(t, rowExists(t, uow, "Oxygen"), "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := openTestUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertRow(ctx, tx, "Blood")
			panic("boom")
		})
	})
	assert.False(t, rowExists(t, uow, "Blood"), "row should not exist after panic rollback")
}
