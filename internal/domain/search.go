package domain

// Sort options for search results.
const (
	SortRelevance = "relevance"
	SortPrice     = "price"
	SortName      = "name"
	SortNewest    = "newest"
	SortScore     = "score"
)

// ValidSortOptions returns the list of valid sort options.
func ValidSortOptions() []string {
	return []string{SortRelevance, SortPrice, SortName, SortNewest, SortScore}
}

// IsValidSort checks whether the given sort string is a valid sort option.
func IsValidSort(sort string) bool {
	for _, s := range ValidSortOptions() {
		if s == sort {
			return true
		}
	}
	return false
}

// DefaultLimit is the result limit applied when SearchOptions.Limit is unset.
const DefaultLimit = 50

// SearchOptions narrows and orders a search. Zero values mean "no filter".
type SearchOptions struct {
	Limit             int      `json:"limit"`
	IncludeOutOfStock bool     `json:"include_out_of_stock"`
	CategoryIDs       []string `json:"category_ids,omitempty"`
	SubCategoryIDs    []string `json:"subcategory_ids,omitempty"`
	BrandIDs          []string `json:"brand_ids,omitempty"`
	MinPrice          *float64 `json:"min_price,omitempty"`
	MaxPrice          *float64 `json:"max_price,omitempty"`
	SortBy            string   `json:"sort_by"`
}

// ScoredCandidate pairs a product with its relevance score during a single
// query. A score of 0 means the product did not match and is dropped before
// ranking. Candidates are never persisted.
type ScoredCandidate struct {
	Product ProductRecord
	Score   int
}

// SearchResult is the assembled response of one search operation.
// TotalCount counts matches before limit truncation.
type SearchResult struct {
	Products      []ProductRecord `json:"products"`
	TotalCount    int             `json:"total_count"`
	SearchTerm    string          `json:"search_term"`
	ExecutionTime int64           `json:"execution_time_ms"`
	Suggestions   []string        `json:"suggestions"`
}
