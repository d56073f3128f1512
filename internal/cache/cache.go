// Package cache holds the time-bounded snapshot of the stock-health feed so
// that repeated renders within the TTL do not re-query the warehouse.
package cache

import (
	"context"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
	"go.uber.org/atomic"
)

// DefaultTTL matches the refresh cadence of the dashboard.
const DefaultTTL = 5 * time.Minute

// SnapshotCache stores the most recent raw feed. Get reports ok=false on a
// miss or after the TTL has elapsed.
type SnapshotCache interface {
	Get(ctx context.Context) (records []domain.InventoryRecord, ok bool, err error)
	Set(ctx context.Context, records []domain.InventoryRecord) error
	Invalidate(ctx context.Context) error
	Stats() Stats
}

// Stats counts lookups since the cache was created.
type Stats struct {
	Hits   int64
	Misses int64
}

type counters struct {
	hits   *atomic.Int64
	misses *atomic.Int64
}

func newCounters() counters {
	return counters{hits: atomic.NewInt64(0), misses: atomic.NewInt64(0)}
}

func (c counters) record(hit bool) {
	if hit {
		c.hits.Inc()
		return
	}
	c.misses.Inc()
}

func (c counters) snapshot() Stats {
	return Stats{Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func cloneRecords(in []domain.InventoryRecord) []domain.InventoryRecord {
	if in == nil {
		return nil
	}
	out := make([]domain.InventoryRecord, len(in))
	copy(out, in)
	return out
}
