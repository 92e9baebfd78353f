package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFetcher counts calls and serves canned records or an error.
type fakeFetcher struct {
	records []RawProduct
	err     error
	calls   int
}

func (f *fakeFetcher) FetchTopProducts(_ context.Context, _ int) ([]RawProduct, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.records, nil
}

// fakeClock is an adjustable time source for deterministic TTL tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestCache(f *fakeFetcher, clock *fakeClock) *Cache {
	return NewCache(f, CacheConfig{TTL: 5 * time.Minute, Now: clock.Now}, testLogger())
}

func TestCache_FreshSnapshotServedWithoutFetch(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{records: []RawProduct{{"id": "p1", "name": "Kit Lissage"}}}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	first := cache.Catalog(ctx)
	require.Len(t, first, 1)
	assert.Equal(t, 1, fetcher.calls)

	clock.Advance(2 * time.Minute)
	second := cache.Catalog(ctx)

	// Same snapshot, no new fetch.
	assert.Equal(t, 1, fetcher.calls)
	assert.Same(t, &first[0], &second[0])
}

func TestCache_RefreshAfterTTL(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{records: []RawProduct{{"id": "p1", "name": "Kit Lissage"}}}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	cache.Catalog(ctx)
	clock.Advance(5*time.Minute + time.Second)

	cache.Catalog(ctx)
	assert.Equal(t, 2, fetcher.calls)

	// Exactly one refresh attempt per stale access.
	cache.Catalog(ctx)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCache_ServesStaleOnFetchFailure(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{records: []RawProduct{{"id": "p1", "name": "Kit Lissage"}}}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	require.Len(t, cache.Catalog(ctx), 1)

	fetcher.err = errors.New("store unreachable")
	clock.Advance(10 * time.Minute)

	got := cache.Catalog(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestCache_EmptyWhenNoSnapshotAndFetchFails(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: errors.New("store unreachable")}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	got := cache.Catalog(ctx)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestCache_RecoversAfterFailure(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{err: errors.New("store unreachable")}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	assert.Empty(t, cache.Catalog(ctx))

	fetcher.err = nil
	fetcher.records = []RawProduct{{"id": "p1", "name": "Kit Lissage"}}

	got := cache.Catalog(ctx)
	require.Len(t, got, 1)
}

func TestCache_MarkStaleForcesRefresh(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{records: []RawProduct{{"id": "p1", "name": "Kit Lissage"}}}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	cache.Catalog(ctx)
	require.Equal(t, 1, fetcher.calls)

	cache.MarkStale()
	cache.Catalog(ctx)
	assert.Equal(t, 2, fetcher.calls)
}

func TestCache_SnapshotReplacedWholesale(t *testing.T) {
	ctx := context.Background()
	fetcher := &fakeFetcher{records: []RawProduct{{"id": "p1", "name": "Kit Lissage"}}}
	clock := &fakeClock{now: time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)}
	cache := newTestCache(fetcher, clock)

	cache.Catalog(ctx)

	fetcher.records = []RawProduct{
		{"id": "p2", "name": "Shampoing Kératine"},
		{"id": "p3", "name": "Masque Réparateur"},
	}
	cache.MarkStale()

	got := cache.Catalog(ctx)
	require.Len(t, got, 2)
	assert.Equal(t, "p2", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)
}
