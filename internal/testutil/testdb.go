package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/domain"
)

// NewTestDB opens a migrated in-memory database that is closed when the
// test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewSeededTestDB is NewTestDB with records loaded into the local
// stock_health mirror.
func NewSeededTestDB(t *testing.T, records []domain.InventoryRecord) *sql.DB {
	t.Helper()
	database := NewTestDB(t)
	ctx := context.Background()
	synced := time.Now().UTC().Format("2006-01-02T15:04:05.000000Z07:00")
	for _, r := range records {
		var stockout any
		if r.HasStockoutEstimate() {
			stockout = r.DaysToStockout
		}
		_, err := database.ExecContext(ctx,
			`INSERT INTO stock_health (location, item, closing_stock, avg_daily_demand, days_to_stockout, stock_status, lead_time_days, synced_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.Location, r.Item, r.ClosingStock, r.AvgDailyDemand, stockout, string(r.StockStatus), r.LeadTimeDays, synced)
		if err != nil {
			t.Fatalf("seeding stock_health: %v", err)
		}
	}
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
