package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// Defaults for the snapshot cache.
const (
	DefaultTTL        = 5 * time.Minute
	DefaultFetchLimit = 1000
)

var (
	catalogRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_refresh_total",
			Help: "Total catalog refresh attempts by result",
		},
		[]string{"result"},
	)

	catalogSnapshotSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_snapshot_size",
			Help: "Number of product records in the current catalog snapshot",
		},
	)
)

// Fetcher retrieves up to limit raw records from the remote store, ordered
// by quality score descending.
type Fetcher interface {
	FetchTopProducts(ctx context.Context, limit int) ([]RawProduct, error)
}

// CacheConfig tunes the snapshot cache. Zero values fall back to defaults;
// Now is injectable for deterministic TTL tests.
type CacheConfig struct {
	TTL        time.Duration
	FetchLimit int
	Now        func() time.Time
}

// Cache holds a TTL-bounded snapshot of the catalog. The snapshot is FRESH
// while now - fetchedAt < TTL and STALE afterwards; a STALE snapshot is
// still servable when a refresh fails. Snapshots are replaced wholesale,
// never partially mutated.
type Cache struct {
	fetcher Fetcher
	logger  *slog.Logger
	ttl     time.Duration
	limit   int
	now     func() time.Time

	mu        sync.Mutex
	snapshot  []domain.ProductRecord
	fetchedAt time.Time
	populated bool
}

// NewCache creates an empty cache; the first Catalog call triggers a fetch.
func NewCache(fetcher Fetcher, cfg CacheConfig, logger *slog.Logger) *Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = DefaultFetchLimit
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Cache{
		fetcher: fetcher,
		logger:  logger,
		ttl:     cfg.TTL,
		limit:   cfg.FetchLimit,
		now:     cfg.Now,
	}
}

// Catalog returns the current snapshot. FRESH snapshots are returned without
// I/O. A STALE (or missing) snapshot triggers one refresh attempt; on fetch
// failure the previous snapshot is served if one exists, an empty catalog
// otherwise. Catalog never returns an error to the caller.
//
// The fetch runs outside the lock: concurrent callers observing STALE may
// both refresh, and the last one to swap the snapshot wins. Both read the
// same upstream source, so refresh ordering carries no correctness weight.
func (c *Cache) Catalog(ctx context.Context) []domain.ProductRecord {
	c.mu.Lock()
	if c.populated && c.now().Sub(c.fetchedAt) < c.ttl {
		snapshot := c.snapshot
		c.mu.Unlock()
		return snapshot
	}
	previous := c.snapshot
	hadPrevious := c.populated
	c.mu.Unlock()

	raws, err := c.fetcher.FetchTopProducts(ctx, c.limit)
	if err != nil {
		catalogRefreshTotal.WithLabelValues("error").Inc()
		if hadPrevious {
			c.logger.WarnContext(ctx, "catalog refresh failed, serving stale snapshot",
				slog.String("error", err.Error()),
				slog.Int("snapshot_size", len(previous)),
			)
			return previous
		}
		c.logger.ErrorContext(ctx, "catalog refresh failed with no snapshot to serve",
			slog.String("error", err.Error()),
		)
		return []domain.ProductRecord{}
	}

	products := ParseCatalog(raws, c.logger)

	c.mu.Lock()
	c.snapshot = products
	c.fetchedAt = c.now()
	c.populated = true
	c.mu.Unlock()

	catalogRefreshTotal.WithLabelValues("success").Inc()
	catalogSnapshotSize.Set(float64(len(products)))
	c.logger.InfoContext(ctx, "catalog snapshot refreshed",
		slog.Int("records", len(products)),
	)
	return products
}

// MarkStale expires the current snapshot so the next Catalog call refreshes
// early instead of waiting for the TTL. The snapshot itself stays servable.
func (c *Cache) MarkStale() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetchedAt = time.Time{}
}
