package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/domain"
)

const stockHealthTable = "stock_health"

// SQLiteStockHealthRepo reads and replaces the local stock-health snapshot.
type SQLiteStockHealthRepo struct {
	db db.DBTX
}

func NewSQLiteStockHealthRepo(conn db.DBTX) *SQLiteStockHealthRepo {
	return &SQLiteStockHealthRepo{db: conn}
}

func (r *SQLiteStockHealthRepo) ListStockHealth(ctx context.Context) ([]domain.InventoryRecord, error) {
	query := `SELECT location, item, closing_stock, avg_daily_demand, days_to_stockout,
		stock_status, lead_time_days
		FROM stock_health ORDER BY location, item`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, wrapTableErr("querying", stockHealthTable, err)
	}
	defer rows.Close()

	var out []domain.InventoryRecord
	for rows.Next() {
		var rec domain.InventoryRecord
		var status string
		var days sql.NullFloat64
		if err := rows.Scan(
			&rec.Location,
			&rec.Item,
			&rec.ClosingStock,
			&rec.AvgDailyDemand,
			&days,
			&status,
			&rec.LeadTimeDays,
		); err != nil {
			return nil, fmt.Errorf("scanning stock health row: %w", err)
		}
		rec.DaysToStockout = stockoutFromNull(days)
		rec.StockStatus = domain.StockStatus(status)
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stock health rows: %w", err)
	}
	return out, nil
}

// ReplaceAll deletes the current snapshot and inserts records. It does not
// open its own transaction.
func (r *SQLiteStockHealthRepo) ReplaceAll(ctx context.Context, records []domain.InventoryRecord, syncedAt time.Time) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM stock_health`); err != nil {
		return wrapTableErr("clearing", stockHealthTable, err)
	}

	query := `INSERT INTO stock_health (location, item, closing_stock, avg_daily_demand,
		days_to_stockout, stock_status, lead_time_days, synced_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	ts := formatTimestamp(syncedAt)
	for _, rec := range records {
		_, err := r.db.ExecContext(ctx, query,
			rec.Location,
			rec.Item,
			rec.ClosingStock,
			rec.AvgDailyDemand,
			stockoutToValue(rec.DaysToStockout),
			string(rec.StockStatus),
			rec.LeadTimeDays,
			ts,
		)
		if err != nil {
			return fmt.Errorf("inserting %s/%s: %w", rec.Location, rec.Item, err)
		}
	}
	return nil
}

// LastSyncedAt returns the most recent import time, or nil when the
// snapshot was never imported.
func (r *SQLiteStockHealthRepo) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	var ts sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT MAX(synced_at) FROM stock_health`).Scan(&ts)
	if err != nil {
		return nil, wrapTableErr("reading sync time from", stockHealthTable, err)
	}
	return parseNullableTime(ts, timestampLayout), nil
}
