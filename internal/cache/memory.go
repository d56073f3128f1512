package cache

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
)

// MemoryCache keeps the snapshot in process memory.
type MemoryCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	now       func() time.Time
	records   []domain.InventoryRecord
	expiresAt time.Time
	filled    bool
	counters
}

// NewMemoryCache returns an empty cache. A non-positive ttl uses DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{ttl: ttl, now: time.Now, counters: newCounters()}
}

// WithClock replaces the time source.
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.now = now
	return c
}

func (c *MemoryCache) Get(_ context.Context) ([]domain.InventoryRecord, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.filled || !c.now().Before(c.expiresAt) {
		c.record(false)
		return nil, false, nil
	}
	c.record(true)
	return cloneRecords(c.records), true, nil
}

func (c *MemoryCache) Set(_ context.Context, records []domain.InventoryRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = cloneRecords(records)
	c.expiresAt = c.now().Add(c.ttl)
	c.filled = true
	return nil
}

func (c *MemoryCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
	c.filled = false
	return nil
}

func (c *MemoryCache) Stats() Stats {
	return c.snapshot()
}
