package service

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
	"github.com/emveka/beautydiscountnext-sub000/internal/engine"
)

// Terms whose normalized form is shorter than this return an empty result
// without touching the catalog.
const minTermLength = 2

// MaxSuggestions bounds the suggestion list attached to search results.
const MaxSuggestions = 5

var searchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "search_queries_total",
		Help: "Total search queries by outcome",
	},
	[]string{"outcome"},
)

// CatalogProvider serves the current catalog snapshot. Implementations never
// return an error; on upstream failure they degrade to stale or empty data.
type CatalogProvider interface {
	Catalog(ctx context.Context) []domain.ProductRecord
}

// BrandDirectory resolves brand ids to display names, batched by id set.
type BrandDirectory interface {
	BrandNames(ctx context.Context, ids []string) (map[string]string, error)
}

// SearchService composes the cache, filter pipeline, scorer, ranker, and
// suggestion generator into the two public search operations. It is
// guaranteed to return a well-typed result under all catalog and network
// conditions; failures degrade to empty results, never to errors.
type SearchService struct {
	catalog CatalogProvider
	brands  BrandDirectory
	logger  *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(catalog CatalogProvider, brands BrandDirectory, logger *slog.Logger) *SearchService {
	return &SearchService{
		catalog: catalog,
		brands:  brands,
		logger:  logger,
	}
}

// Search runs a free-text query against the cached catalog: filter, score,
// rank, truncate, suggest. TotalCount counts matches before limit
// truncation; Suggestions come from the unfiltered catalog.
func (s *SearchService) Search(ctx context.Context, term string, opts domain.SearchOptions) domain.SearchResult {
	start := time.Now()

	if opts.Limit <= 0 {
		opts.Limit = domain.DefaultLimit
	}
	if opts.SortBy == "" || !domain.IsValidSort(opts.SortBy) {
		opts.SortBy = domain.SortRelevance
	}

	result := domain.SearchResult{
		Products:    []domain.ProductRecord{},
		SearchTerm:  term,
		Suggestions: []string{},
	}

	if utf8.RuneCountInString(engine.Normalize(term)) < minTermLength {
		searchesTotal.WithLabelValues("term_too_short").Inc()
		result.ExecutionTime = time.Since(start).Milliseconds()
		return result
	}

	catalog := s.resolveBrands(ctx, s.catalog.Catalog(ctx))

	filtered := engine.ApplyFilters(catalog, opts)

	candidates := make([]domain.ScoredCandidate, 0, len(filtered))
	for _, p := range filtered {
		if score := engine.Score(p, term); score > 0 {
			candidates = append(candidates, domain.ScoredCandidate{Product: p, Score: score})
		}
	}

	ranked := engine.Rank(candidates, opts.SortBy)
	result.TotalCount = len(ranked)
	if len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}
	result.Products = ranked
	result.Suggestions = engine.Suggest(term, catalog, MaxSuggestions)
	result.ExecutionTime = time.Since(start).Milliseconds()

	if result.TotalCount == 0 {
		searchesTotal.WithLabelValues("empty").Inc()
	} else {
		searchesTotal.WithLabelValues("hit").Inc()
	}

	s.logger.DebugContext(ctx, "search executed",
		slog.String("term", term),
		slog.String("sort_by", opts.SortBy),
		slog.Int("total", result.TotalCount),
		slog.Int64("took_ms", result.ExecutionTime),
	)

	return result
}

// Suggest is the lighter sibling of Search: no filtering or scoring, just
// the suggestion generator against the cached catalog.
func (s *SearchService) Suggest(ctx context.Context, term string, maxSuggestions int) []string {
	if maxSuggestions <= 0 {
		maxSuggestions = MaxSuggestions
	}
	if utf8.RuneCountInString(engine.Normalize(term)) < minTermLength {
		return []string{}
	}
	return engine.Suggest(term, s.catalog.Catalog(ctx), maxSuggestions)
}

// resolveBrands fills in missing brand names via one batched directory call
// per distinct brand id. A directory failure degrades to unresolved names.
// The snapshot itself is never mutated; records are copied first.
func (s *SearchService) resolveBrands(ctx context.Context, snapshot []domain.ProductRecord) []domain.ProductRecord {
	var missing []string
	seen := make(map[string]struct{})
	for _, p := range snapshot {
		if p.BrandID == "" || p.BrandName != "" {
			continue
		}
		if _, ok := seen[p.BrandID]; ok {
			continue
		}
		seen[p.BrandID] = struct{}{}
		missing = append(missing, p.BrandID)
	}
	if len(missing) == 0 {
		return snapshot
	}

	names, err := s.brands.BrandNames(ctx, missing)
	if err != nil {
		s.logger.WarnContext(ctx, "brand name resolution failed",
			slog.Int("brand_ids", len(missing)),
			slog.String("error", err.Error()),
		)
		return snapshot
	}

	catalog := make([]domain.ProductRecord, len(snapshot))
	copy(catalog, snapshot)
	for i := range catalog {
		if catalog[i].BrandName == "" {
			catalog[i].BrandName = names[catalog[i].BrandID]
		}
	}
	return catalog
}
