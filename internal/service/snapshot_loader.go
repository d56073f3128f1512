package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/carestock/internal/cache"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/repository"
)

// SnapshotLoader reads the stock-health feed through an optional cache.
type SnapshotLoader struct {
	feed  repository.StockHealthReader
	cache cache.SnapshotCache
}

// NewSnapshotLoader returns a loader. c may be nil to always read the feed.
func NewSnapshotLoader(feed repository.StockHealthReader, c cache.SnapshotCache) *SnapshotLoader {
	return &SnapshotLoader{feed: feed, cache: c}
}

type loadedFeed struct {
	records     []domain.InventoryRecord
	fromCache   bool
	unavailable bool
	reason      string
	// cacheErr is reported but never fails the load.
	cacheErr error
}

func (l *SnapshotLoader) load(ctx context.Context, refresh bool) (*loadedFeed, error) {
	out := &loadedFeed{}

	if l.cache != nil && !refresh {
		recs, ok, err := l.cache.Get(ctx)
		switch {
		case err != nil:
			out.cacheErr = err
		case ok:
			out.records = recs
			out.fromCache = true
			return out, nil
		}
	}

	recs, err := l.feed.ListStockHealth(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrUnavailable) {
			out.unavailable = true
			out.reason = err.Error()
			return out, nil
		}
		return nil, fmt.Errorf("reading stock health feed: %w", err)
	}
	out.records = recs

	if l.cache != nil {
		if err := l.cache.Set(ctx, recs); err != nil && out.cacheErr == nil {
			out.cacheErr = err
		}
	}
	return out, nil
}

// Invalidate drops the cached snapshot, if any.
func (l *SnapshotLoader) Invalidate(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.Invalidate(ctx)
}

func (f *loadedFeed) annotate(fields map[string]any) {
	fields["from_cache"] = f.fromCache
	fields["records"] = len(f.records)
	if f.unavailable {
		fields["unavailable"] = true
	}
	if f.cacheErr != nil {
		fields["cache_error"] = f.cacheErr.Error()
	}
}
