package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/carestock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestMemoryCache_MissThenHit(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(5 * time.Minute).WithClock(clock.now)
	ctx := context.Background()

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, testutil.SampleSnapshot()))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, testutil.SampleSnapshot(), got)
	assert.Equal(t, Stats{Hits: 1, Misses: 1}, c.Stats())
}

func TestMemoryCache_ExpiresAfterTTL(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	c := NewMemoryCache(5 * time.Minute).WithClock(clock.now)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, testutil.SampleSnapshot()))

	clock.t = clock.t.Add(4*time.Minute + 59*time.Second)
	_, ok, _ := c.Get(ctx)
	assert.True(t, ok)

	clock.t = clock.t.Add(time.Second)
	_, ok, _ = c.Get(ctx)
	assert.False(t, ok, "entry should expire exactly at the TTL")
}

func TestMemoryCache_Invalidate(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, testutil.SampleSnapshot()))

	require.NoError(t, c.Invalidate(ctx))

	_, ok, _ := c.Get(ctx)
	assert.False(t, ok)
}

func TestMemoryCache_ReturnsCopies(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	recs := testutil.SampleSnapshot()
	require.NoError(t, c.Set(ctx, recs))

	recs[0].Item = "mutated"
	got, _, _ := c.Get(ctx)
	got[1].Item = "also mutated"

	again, _, _ := c.Get(ctx)
	assert.Equal(t, "Insulin", again[0].Item)
	assert.Equal(t, "Gauze", again[1].Item)
}

func TestMemoryCache_EmptySnapshotIsAHit(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, nil))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestNewMemoryCache_DefaultTTL(t *testing.T) {
	assert.Equal(t, DefaultTTL, NewMemoryCache(0).ttl)
}
