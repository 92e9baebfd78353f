package engine

import (
	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// ApplyFilters narrows the catalog by the structural predicates of the given
// options: stock policy, category/subcategory/brand membership (any-of), and
// price bounds. The output is always a subset of the input, in input order,
// and every element satisfies all active predicates. Filtering runs before
// scoring to shrink the scoring workload.
func ApplyFilters(catalog []domain.ProductRecord, opts domain.SearchOptions) []domain.ProductRecord {
	out := make([]domain.ProductRecord, 0, len(catalog))
	for _, p := range catalog {
		if !opts.IncludeOutOfStock && p.Stock == domain.StockOutOfStock {
			continue
		}
		if len(opts.CategoryIDs) > 0 && !containsAny(p.CategoryIDs, opts.CategoryIDs) {
			continue
		}
		if len(opts.SubCategoryIDs) > 0 && !containsAny(p.SubCategoryIDs, opts.SubCategoryIDs) {
			continue
		}
		if len(opts.BrandIDs) > 0 && !containsString(opts.BrandIDs, p.BrandID) {
			continue
		}
		if opts.MinPrice != nil && p.Price < *opts.MinPrice {
			continue
		}
		if opts.MaxPrice != nil && p.Price > *opts.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

// containsAny reports whether the two ID sets intersect.
func containsAny(have, want []string) bool {
	for _, w := range want {
		if containsString(have, w) {
			return true
		}
	}
	return false
}
