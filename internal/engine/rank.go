package engine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// Rank orders scored candidates by the requested sort mode and returns the
// bare products. Only the relevance mode consumes the relevance score; the
// other modes order the same candidate set by their own key. Every mode ends
// with the same deterministic tie-break: quality score descending, then
// product ID ascending.
func Rank(candidates []domain.ScoredCandidate, sortBy string) []domain.ProductRecord {
	ordered := make([]domain.ScoredCandidate, len(candidates))
	copy(ordered, candidates)

	switch sortBy {
	case domain.SortPrice:
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Product.Price != ordered[j].Product.Price {
				return ordered[i].Product.Price < ordered[j].Product.Price
			}
			return tieBreak(ordered[i].Product, ordered[j].Product)
		})
	case domain.SortName:
		// Locale-aware, numeric-sequence-aware comparison: "Lissage 2" sorts
		// before "Lissage 10" and accented names collate correctly.
		c := collate.New(language.French, collate.Numeric, collate.IgnoreCase)
		sort.SliceStable(ordered, func(i, j int) bool {
			cmp := c.CompareString(ordered[i].Product.Name, ordered[j].Product.Name)
			if cmp != 0 {
				return cmp < 0
			}
			return tieBreak(ordered[i].Product, ordered[j].Product)
		})
	case domain.SortNewest:
		sort.SliceStable(ordered, func(i, j int) bool {
			if !ordered[i].Product.CreatedAt.Equal(ordered[j].Product.CreatedAt) {
				return ordered[i].Product.CreatedAt.After(ordered[j].Product.CreatedAt)
			}
			return tieBreak(ordered[i].Product, ordered[j].Product)
		})
	case domain.SortScore:
		sort.SliceStable(ordered, func(i, j int) bool {
			return tieBreak(ordered[i].Product, ordered[j].Product)
		})
	default: // domain.SortRelevance and unknown modes
		sort.SliceStable(ordered, func(i, j int) bool {
			if ordered[i].Score != ordered[j].Score {
				return ordered[i].Score > ordered[j].Score
			}
			return tieBreak(ordered[i].Product, ordered[j].Product)
		})
	}

	products := make([]domain.ProductRecord, len(ordered))
	for i, c := range ordered {
		products[i] = c.Product
	}
	return products
}

// tieBreak is the shared secondary ordering: catalog quality score
// descending, then product ID ascending.
func tieBreak(a, b domain.ProductRecord) bool {
	if a.QualityScore != b.QualityScore {
		return a.QualityScore > b.QualityScore
	}
	return a.ID < b.ID
}
