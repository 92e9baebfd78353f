package engine

import (
	"strings"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// Suggest proposes alternate query strings from the catalog: the original
// (non-normalized) product name or brand name of every record whose
// normalized name or brand contains the normalized term. Collection stops at
// maxCount distinct strings. Returns an empty slice when nothing matches.
func Suggest(term string, catalog []domain.ProductRecord, maxCount int) []string {
	normalized := Normalize(term)
	suggestions := make([]string, 0, maxCount)
	if normalized == "" || maxCount <= 0 {
		return suggestions
	}

	seen := make(map[string]struct{}, maxCount)
	add := func(s string) {
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		suggestions = append(suggestions, s)
	}

	for _, p := range catalog {
		if len(suggestions) >= maxCount {
			break
		}
		if strings.Contains(Normalize(p.Name), normalized) {
			add(p.Name)
		}
		if len(suggestions) >= maxCount {
			break
		}
		if strings.Contains(Normalize(p.BrandName), normalized) {
			add(p.BrandName)
		}
	}

	return suggestions
}
