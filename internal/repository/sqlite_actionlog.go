package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/google/uuid"
)

const actionLogTable = "action_log"

// SQLiteActionLogRepo implements ActionLogRepo using a SQLite database.
type SQLiteActionLogRepo struct {
	db db.DBTX
}

func NewSQLiteActionLogRepo(conn db.DBTX) *SQLiteActionLogRepo {
	return &SQLiteActionLogRepo{db: conn}
}

// Append inserts e. An empty ID is replaced with a new UUID and a zero
// timestamp with the current time; both are written back to e.
func (r *SQLiteActionLogRepo) Append(ctx context.Context, e *domain.ActionLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = nowFunc()
	}

	query := `INSERT INTO action_log (id, action_timestamp, location, item, action_type, notes, user_name)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		formatTimestamp(e.Timestamp),
		e.Location,
		e.Item,
		string(e.ActionType),
		e.Notes,
		e.UserName,
	)
	if err != nil {
		return wrapTableErr("inserting into", actionLogTable, err)
	}
	return nil
}

// ListRecent returns up to limit entries, newest first. A non-positive
// limit returns every entry.
func (r *SQLiteActionLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ActionLogEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, action_timestamp, location, item, action_type, notes, user_name
		FROM action_log ORDER BY action_timestamp DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, wrapTableErr("querying", actionLogTable, err)
	}
	defer rows.Close()

	var out []*domain.ActionLogEntry
	for rows.Next() {
		var e domain.ActionLogEntry
		var ts, actionType string
		if err := rows.Scan(&e.ID, &ts, &e.Location, &e.Item, &actionType, &e.Notes, &e.UserName); err != nil {
			return nil, fmt.Errorf("scanning action log row: %w", err)
		}
		parsed, err := time.Parse(timestampLayout, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing action timestamp %q: %w", ts, err)
		}
		e.Timestamp = parsed
		e.ActionType = domain.ActionType(actionType)
		out = append(out, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating action log rows: %w", err)
	}
	return out, nil
}
