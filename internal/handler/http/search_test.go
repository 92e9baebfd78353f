package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emveka/beautydiscountnext-sub000/internal/domain"
	"github.com/emveka/beautydiscountnext-sub000/internal/service"
	"github.com/emveka/beautydiscountnext-sub000/pkg/health"
	"github.com/emveka/beautydiscountnext-sub000/pkg/middleware"
)

type stubCatalog struct {
	products []domain.ProductRecord
}

func (s *stubCatalog) Catalog(ctx context.Context) []domain.ProductRecord {
	return s.products
}

type stubBrands struct{}

func (s *stubBrands) BrandNames(ctx context.Context, ids []string) (map[string]string, error) {
	return map[string]string{}, nil
}

func newTestServer(t *testing.T, products []domain.ProductRecord) *httptest.Server {
	t.Helper()

	logger := slog.Default()
	svc := service.NewSearchService(&stubCatalog{products: products}, &stubBrands{}, logger)
	router := NewRouter(svc, health.NewHandler(), middleware.DefaultCORSConfig(), logger)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func testProducts() []domain.ProductRecord {
	now := time.Now()
	return []domain.ProductRecord{
		{
			ID:        "p1",
			Name:      "Lissage Brésilien Premium",
			BrandName: "Inoar",
			Price:     249,
			Stock:     domain.StockInStock,
			CreatedAt: now,
		},
		{
			ID:        "p2",
			Name:      "Kit Lissage Express",
			BrandName: "Kativa",
			Price:     99,
			Stock:     domain.StockInStock,
			CreatedAt: now,
		},
		{
			ID:        "p3",
			Name:      "Masque Hydratant",
			BrandName: "Kérastase",
			Price:     149,
			Stock:     domain.StockInStock,
			CreatedAt: now,
		},
	}
}

type searchEnvelope struct {
	Data  *domain.SearchResult `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doSearch(t *testing.T, srv *httptest.Server, query string) (*http.Response, searchEnvelope) {
	t.Helper()

	resp, err := http.Get(srv.URL + "/api/v1/search/?" + query)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var envelope searchEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestSearch_ReturnsMatches(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, envelope := doSearch(t, srv, "q=lissage")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envelope.Data)
	assert.Equal(t, 2, envelope.Data.TotalCount)
	assert.Equal(t, "lissage", envelope.Data.SearchTerm)
}

func TestSearch_ShortTermReturnsEmptyResult(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, envelope := doSearch(t, srv, "q=a")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envelope.Data)
	assert.Zero(t, envelope.Data.TotalCount)
	assert.Empty(t, envelope.Data.Products)
}

func TestSearch_InvalidSortRejected(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, envelope := doSearch(t, srv, "q=lissage&sort=popularity")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "INVALID_PARAMETER", envelope.Error.Code)
}

func TestSearch_InvalidLimitRejected(t *testing.T) {
	srv := newTestServer(t, testProducts())

	for _, limit := range []string{"0", "-5", "101", "abc"} {
		resp, envelope := doSearch(t, srv, "q=lissage&limit="+limit)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, envelope.Error)
	}
}

func TestSearch_LimitTruncatesButKeepsTotal(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, envelope := doSearch(t, srv, "q=lissage&limit=1")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envelope.Data)
	assert.Len(t, envelope.Data.Products, 1)
	assert.Equal(t, 2, envelope.Data.TotalCount)
}

func TestSearch_PriceBoundsValidated(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, _ := doSearch(t, srv, "q=lissage&min_price=200&max_price=100")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doSearch(t, srv, "q=lissage&min_price=-1")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSearch_PriceFilterApplied(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, envelope := doSearch(t, srv, "q=lissage&max_price=100")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, envelope.Data)
	require.Len(t, envelope.Data.Products, 1)
	assert.Equal(t, "p2", envelope.Data.Products[0].ID)
}

func TestSuggest_ReturnsSuggestions(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, err := http.Get(srv.URL + "/api/v1/search/suggest?q=lissage")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Suggestions []string `json:"suggestions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Contains(t, envelope.Data.Suggestions, "Lissage Brésilien Premium")
}

func TestSuggest_EmptyTermReturnsEmptyList(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, err := http.Get(srv.URL + "/api/v1/search/suggest?q=")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data struct {
			Suggestions []string `json:"suggestions"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Empty(t, envelope.Data.Suggestions)
}

func TestHealthLive(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, err := http.Get(srv.URL + "/health/live")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSearch_CorrelationIDHeaderSet(t *testing.T) {
	srv := newTestServer(t, testProducts())

	resp, _ := doSearch(t, srv, "q=lissage")

	assert.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))
}
