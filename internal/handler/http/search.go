package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
	"github.com/emveka/beautydiscountnext-sub000/internal/service"
	"github.com/emveka/beautydiscountnext-sub000/pkg/httputil"
)

// maxLimit caps the per-request result limit.
const maxLimit = 100

// SearchHandler handles HTTP requests for search endpoints.
type SearchHandler struct {
	service *service.SearchService
	logger  *slog.Logger
}

// NewSearchHandler creates a new search HTTP handler.
func NewSearchHandler(svc *service.SearchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		service: svc,
		logger:  logger,
	}
}

func writeInvalidParameter(w http.ResponseWriter, message string) {
	httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
		Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: message},
	})
}

// Search handles GET /api/v1/search
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	opts := domain.SearchOptions{
		Limit:  domain.DefaultLimit,
		SortBy: domain.SortRelevance,
	}

	if v := r.URL.Query().Get("sort"); v != "" {
		if !domain.IsValidSort(v) {
			writeInvalidParameter(w, fmt.Sprintf("sort must be one of: %s", strings.Join(domain.ValidSortOptions(), ", ")))
			return
		}
		opts.SortBy = v
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 || limit > maxLimit {
			writeInvalidParameter(w, fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit))
			return
		}
		opts.Limit = limit
	}

	if v := r.URL.Query().Get("include_out_of_stock"); v != "" {
		include, err := strconv.ParseBool(v)
		if err != nil {
			writeInvalidParameter(w, "include_out_of_stock must be a boolean")
			return
		}
		opts.IncludeOutOfStock = include
	}

	opts.CategoryIDs = splitIDs(r.URL.Query().Get("category_ids"))
	opts.SubCategoryIDs = splitIDs(r.URL.Query().Get("subcategory_ids"))
	opts.BrandIDs = splitIDs(r.URL.Query().Get("brand_ids"))

	if v := r.URL.Query().Get("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			writeInvalidParameter(w, "min_price must be a non-negative number")
			return
		}
		opts.MinPrice = &price
	}
	if v := r.URL.Query().Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			writeInvalidParameter(w, "max_price must be a non-negative number")
			return
		}
		opts.MaxPrice = &price
	}
	if opts.MinPrice != nil && opts.MaxPrice != nil && *opts.MinPrice > *opts.MaxPrice {
		writeInvalidParameter(w, "min_price must not exceed max_price")
		return
	}

	result := h.service.Search(r.Context(), term, opts)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}

// Suggest handles GET /api/v1/search/suggest
func (h *SearchHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	limit := service.MaxSuggestions
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil && l > 0 && l <= 20 {
			limit = l
		}
	}

	suggestions := h.service.Suggest(r.Context(), term, limit)

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]any{"suggestions": suggestions}})
}

// splitIDs parses a comma-separated ID list, dropping empty entries.
func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	if len(ids) == 0 {
		return nil
	}
	return ids
}
