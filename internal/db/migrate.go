package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE statements are re-run on every open.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := migrateNormalizePreferenceLists(db); err != nil {
		return fmt.Errorf("normalizing alert_preferences lists: %w", err)
	}
	return nil
}

var migrations = []string{
	// Local mirror of the warehouse STOCK_HEALTH_DT view.
	`CREATE TABLE IF NOT EXISTS stock_health (
		location         TEXT NOT NULL,
		item             TEXT NOT NULL,
		closing_stock    REAL NOT NULL DEFAULT 0,
		avg_daily_demand REAL NOT NULL DEFAULT 0,
		days_to_stockout REAL,
		stock_status     TEXT NOT NULL,
		lead_time_days   REAL NOT NULL DEFAULT 0,
		PRIMARY KEY (location, item)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_stock_health_status ON stock_health(stock_status)`,

	`CREATE TABLE IF NOT EXISTS action_log (
		id               TEXT PRIMARY KEY,
		action_timestamp TEXT NOT NULL,
		location         TEXT NOT NULL,
		item             TEXT NOT NULL,
		action_type      TEXT NOT NULL,
		notes            TEXT NOT NULL DEFAULT '',
		user_name        TEXT NOT NULL CHECK(length(trim(user_name)) > 0)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_action_log_timestamp ON action_log(action_timestamp)`,

	`CREATE TABLE IF NOT EXISTS alert_preferences (
		id            TEXT PRIMARY KEY DEFAULT 'default',
		email_enabled INTEGER NOT NULL DEFAULT 0,
		email         TEXT NOT NULL DEFAULT '',
		sms_enabled   INTEGER NOT NULL DEFAULT 0,
		phone         TEXT NOT NULL DEFAULT '',
		levels        TEXT NOT NULL DEFAULT 'Critical|Warning',
		recipients    TEXT NOT NULL DEFAULT 'Hospital procurement team'
	)`,

	`INSERT OR IGNORE INTO alert_preferences (id) VALUES ('default')`,

	// Snapshot import bookkeeping
	`ALTER TABLE stock_health ADD COLUMN synced_at TEXT`,
	`ALTER TABLE alert_preferences ADD COLUMN updated_at TEXT`,
}

// migrateNormalizePreferenceLists rewrites comma-separated level and
// recipient lists written by early builds to the '|' separator.
// Idempotent: rows without a comma are left alone.
func migrateNormalizePreferenceLists(db *sql.DB) error {
	ctx := context.Background()

	_, err := db.ExecContext(ctx, `UPDATE alert_preferences
		SET levels = REPLACE(levels, ',', '|'),
		    recipients = REPLACE(recipients, ',', '|')
		WHERE instr(levels, ',') > 0 OR instr(recipients, ',') > 0`)
	if err != nil {
		return fmt.Errorf("rewriting list separators: %w", err)
	}
	return nil
}
