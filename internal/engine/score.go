package engine

import (
	"strings"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
)

// Field weights, highest first. Points accumulate across every variant and
// every field; there is no short-circuit on the first hit.
const (
	weightNameEquals        = 100
	weightNameContains      = 80
	weightBrandEquals       = 70
	weightBrandContains     = 50
	weightShortDescContains = 40
	weightDescContains      = 30

	// Fallback similarity: only consulted when no variant matched anywhere.
	similarityThreshold  = 0.4
	similarityMultiplier = 20

	// Catalog quality bonus for products the store curates well.
	qualityBonusThreshold = 80
	qualityBonus          = 5
)

// Score computes the relevance of one product against a free-text term.
// A result of 0 means "no match"; such candidates are dropped before ranking.
func Score(p domain.ProductRecord, term string) int {
	normalized := Normalize(term)
	if normalized == "" {
		return 0
	}
	variants := Expand(normalized)

	name := Normalize(p.Name)
	brand := Normalize(p.BrandName)
	shortDesc := Normalize(p.ShortDescription)
	desc := Normalize(p.Description)

	score := 0
	for _, v := range variants {
		if name == v {
			score += weightNameEquals
		}
		if strings.Contains(name, v) {
			score += weightNameContains
		}
		if brand == v {
			score += weightBrandEquals
		}
		if strings.Contains(brand, v) {
			score += weightBrandContains
		}
		if strings.Contains(shortDesc, v) {
			score += weightShortDescContains
		}
		if strings.Contains(desc, v) {
			score += weightDescContains
		}
	}

	if score == 0 {
		if s := Similarity(name, normalized); s > similarityThreshold {
			score += int(s * similarityMultiplier)
		}
		if s := Similarity(brand, normalized); s > similarityThreshold {
			score += int(s * similarityMultiplier)
		}
	}

	// Quality bonus never turns a non-match into a match.
	if score > 0 && p.QualityScore > qualityBonusThreshold {
		score += qualityBonus
	}

	return score
}
