package testutil

import (
	"context"
	"sync"

	"github.com/alexanderramin/carestock/internal/domain"
)

// CountingActionSink is an in-memory action log that records how many
// writes it received. Set Err to make every call fail.
type CountingActionSink struct {
	mu      sync.Mutex
	entries []*domain.ActionLogEntry
	Writes  int
	Err     error
}

func (s *CountingActionSink) Append(_ context.Context, e *domain.ActionLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Writes++
	if s.Err != nil {
		return s.Err
	}
	s.entries = append(s.entries, e)
	return nil
}

func (s *CountingActionSink) ListRecent(_ context.Context, limit int) ([]*domain.ActionLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []*domain.ActionLogEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, s.entries[i])
	}
	return out, nil
}

// StaticFeed serves a fixed snapshot and counts reads.
type StaticFeed struct {
	mu      sync.Mutex
	Records []domain.InventoryRecord
	Err     error
	Reads   int
}

func (f *StaticFeed) ListStockHealth(_ context.Context) ([]domain.InventoryRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Reads++
	if f.Err != nil {
		return nil, f.Err
	}
	out := make([]domain.InventoryRecord, len(f.Records))
	copy(out, f.Records)
	return out, nil
}
