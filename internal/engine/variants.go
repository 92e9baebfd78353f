package engine

import "sort"

// correctionTable maps a canonical domain term to its known misspellings and
// alternate spellings, as typed by customers of the storefront. Keys and
// values are normalized forms (see Normalize). This closed list is the only
// typo-tolerance mechanism; there is no generative edit-distance correction.
var correctionTable = map[string][]string{
	"lissage":       {"lisage", "lissages", "lyssage"},
	"bresilien":     {"bresilienne", "brasilien", "bresil"},
	"keratine":      {"keratin", "queratine", "kheratine"},
	"taninoplastie": {"tanino", "taninoplasty", "tanynoplastie"},
	"botox":         {"bottox", "botoxx"},
	"shampoing":     {"shampooing", "shampoo", "champoing"},
	"masque":        {"mask", "masques"},
	"serum":         {"serums", "cerum"},
	"proteine":      {"protein", "proteines"},
	"huile":         {"huiles", "uile"},
	"lisseur":       {"liseur", "lisseurs"},
	"soin":          {"soins", "soing"},
	"coloration":    {"colorations", "colloration"},
	"decolorant":    {"decolorants", "decollorant"},
	"boucle":        {"boucles", "bouclee"},
}

// variantGroups indexes every term of correctionTable (canonical or variant)
// to its full spelling group, so lookups are symmetric: if b is in
// Expand(a), then a is in Expand(b).
var variantGroups = buildVariantGroups()

func buildVariantGroups() map[string][]string {
	groups := make(map[string][]string, len(correctionTable)*4)
	for canonical, variants := range correctionTable {
		group := append([]string{canonical}, variants...)
		for _, term := range group {
			groups[term] = group
		}
	}
	return groups
}

// Expand returns the spelling-variant set of a normalized term. The result
// always contains the term itself, first; table-defined variants follow in
// sorted order. Terms absent from the correction table expand to themselves.
func Expand(term string) []string {
	group, ok := variantGroups[term]
	if !ok {
		return []string{term}
	}

	out := make([]string, 0, len(group))
	out = append(out, term)
	rest := make([]string, 0, len(group)-1)
	for _, v := range group {
		if v != term {
			rest = append(rest, v)
		}
	}
	sort.Strings(rest)
	return append(out, rest...)
}
