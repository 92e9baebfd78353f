package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/emveka/beautydiscountnext-sub000/pkg/httpclient"
)

// StoreClient consumes the two upstream collaborator contracts over HTTP:
// the remote product store (top products by quality score) and the brand
// directory (batched id -> name lookup). All calls go through the retrying
// client and its circuit breaker.
type StoreClient struct {
	http    *httpclient.CircuitBreakerClient
	baseURL string
	logger  *slog.Logger
}

// NewStoreClient creates a client for the product store at baseURL.
func NewStoreClient(baseURL string, client *httpclient.CircuitBreakerClient, logger *slog.Logger) *StoreClient {
	return &StoreClient{
		http:    client,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// FetchTopProducts retrieves up to limit raw product records, ordered by
// quality score descending by the upstream contract.
func (c *StoreClient) FetchTopProducts(ctx context.Context, limit int) ([]RawProduct, error) {
	u := fmt.Sprintf("%s/api/v1/products/top?limit=%d", c.baseURL, limit)

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch top products: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "product store")
	}

	var envelope struct {
		Data []RawProduct `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode top products response: %w", err)
	}
	return envelope.Data, nil
}

// BrandNames resolves brand ids to display names in one batched call.
// Unknown ids are simply absent from the result map.
func (c *StoreClient) BrandNames(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	u := fmt.Sprintf("%s/api/v1/brands?ids=%s", c.baseURL, url.QueryEscape(strings.Join(ids, ",")))

	resp, err := c.http.Get(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("fetch brand names: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, httpclient.ParseResponseError(resp, "brand directory")
	}

	var envelope struct {
		Data []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode brand names response: %w", err)
	}

	for _, b := range envelope.Data {
		if b.ID != "" {
			names[b.ID] = b.Name
		}
	}
	return names, nil
}

// Ping reports whether the product store is reachable, for readiness checks.
func (c *StoreClient) Ping(ctx context.Context) error {
	resp, err := c.http.Get(ctx, c.baseURL+"/health/live")
	if err != nil {
		return fmt.Errorf("product store unreachable: %w", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("product store unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
