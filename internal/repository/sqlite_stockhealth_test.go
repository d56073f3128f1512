package repository

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockHealthRepo_EmptySnapshot(t *testing.T) {
	repo := NewSQLiteStockHealthRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	recs, err := repo.ListStockHealth(ctx)
	require.NoError(t, err)
	assert.Empty(t, recs)

	synced, err := repo.LastSyncedAt(ctx)
	require.NoError(t, err)
	assert.Nil(t, synced)
}

func TestStockHealthRepo_ReplaceAllRoundTrip(t *testing.T) {
	repo := NewSQLiteStockHealthRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	syncedAt := time.Date(2025, 4, 2, 8, 30, 0, 0, time.UTC)

	in := testutil.SampleSnapshot()
	require.NoError(t, repo.ReplaceAll(ctx, in, syncedAt))

	got, err := repo.ListStockHealth(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(in))

	// Ordered by location, then item.
	assert.Equal(t, "Gauze", got[0].Item)
	assert.Equal(t, "Insulin", got[1].Item)
	assert.Equal(t, domain.StatusCritical, got[1].StockStatus)
	assert.Equal(t, 6.0, got[1].ClosingStock)
	assert.Equal(t, 2.0, got[1].DaysToStockout)

	synced, err := repo.LastSyncedAt(ctx)
	require.NoError(t, err)
	require.NotNil(t, synced)
	assert.True(t, syncedAt.Equal(*synced))
}

func TestStockHealthRepo_InfiniteStockoutStoredAsNull(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteStockHealthRepo(database)
	ctx := context.Background()

	rec := testutil.NewTestRecord("Rural Clinic", "Masks", testutil.WithDemand(0))
	require.True(t, math.IsInf(rec.DaysToStockout, 1))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.InventoryRecord{rec}, time.Now()))

	var isNull bool
	require.NoError(t, database.QueryRow(`SELECT days_to_stockout IS NULL FROM stock_health`).Scan(&isNull))
	assert.True(t, isNull)

	got, err := repo.ListStockHealth(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, math.IsInf(got[0].DaysToStockout, 1))
}

func TestStockHealthRepo_ReplaceAllDropsOldRows(t *testing.T) {
	repo := NewSQLiteStockHealthRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.ReplaceAll(ctx, testutil.SampleSnapshot(), time.Now()))
	require.NoError(t, repo.ReplaceAll(ctx, []domain.InventoryRecord{
		testutil.NewTestRecord("District Store", "Gloves"),
	}, time.Now()))

	got, err := repo.ListStockHealth(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gloves", got[0].Item)
}

func TestStockHealthRepo_ReplaceRollsBackOnFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	require.NoError(t, NewSQLiteStockHealthRepo(database).ReplaceAll(ctx, testutil.SampleSnapshot(), time.Now()))

	boom := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: boom}
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteStockHealthRepo(tx).ReplaceAll(ctx, []domain.InventoryRecord{
			testutil.NewTestRecord("A", "1"),
			testutil.NewTestRecord("A", "2"),
			testutil.NewTestRecord("A", "3"),
		}, time.Now())
	})
	require.ErrorIs(t, err, boom)

	got, err := NewSQLiteStockHealthRepo(database).ListStockHealth(ctx)
	require.NoError(t, err)
	assert.Len(t, got, len(testutil.SampleSnapshot()), "previous snapshot should survive")
}

func TestStockHealthRepo_MissingTableIsUnavailable(t *testing.T) {
	database := testutil.NewTestDB(t)
	_, err := database.Exec(`DROP TABLE stock_health`)
	require.NoError(t, err)

	_, err = NewSQLiteStockHealthRepo(database).ListStockHealth(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
