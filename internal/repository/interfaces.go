package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
)

// StockHealthReader is the input feed: the warehouse stock-health view.
type StockHealthReader interface {
	ListStockHealth(ctx context.Context) ([]domain.InventoryRecord, error)
}

// StockHealthWriter replaces the local snapshot. Callers run it inside a
// unit of work so a failed import leaves the previous snapshot intact.
type StockHealthWriter interface {
	ReplaceAll(ctx context.Context, records []domain.InventoryRecord, syncedAt time.Time) error
	LastSyncedAt(ctx context.Context) (*time.Time, error)
}

// ActionLogRepo is the append-only action log sink.
type ActionLogRepo interface {
	Append(ctx context.Context, e *domain.ActionLogEntry) error
	ListRecent(ctx context.Context, limit int) ([]*domain.ActionLogEntry, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context) (*domain.AlertPreferences, error)
	Save(ctx context.Context, p *domain.AlertPreferences) error
}
