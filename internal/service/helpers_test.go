package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alexanderramin/carestock/internal/cache"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/testutil"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, event)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// brokenCache fails every call.
type brokenCache struct{}

var errCacheDown = errors.New("cache down")

func (brokenCache) Get(context.Context) ([]domain.InventoryRecord, bool, error) {
	return nil, false, errCacheDown
}
func (brokenCache) Set(context.Context, []domain.InventoryRecord) error { return errCacheDown }
func (brokenCache) Invalidate(context.Context) error                    { return errCacheDown }
func (brokenCache) Stats() cache.Stats                                   { return cache.Stats{} }

func sampleFeed() *testutil.StaticFeed {
	return &testutil.StaticFeed{Records: testutil.SampleSnapshot()}
}

func fixedNow() *time.Time {
	t := time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)
	return &t
}
