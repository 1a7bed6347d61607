package remote

import (
	"context"
	"net/http"
	"net/url"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// Filters narrows a natural-language search. Nil price bounds mean
// unbounded; empty strings mean unfiltered.
type Filters struct {
	MinPrice *float64 `json:"min_price,omitempty"`
	MaxPrice *float64 `json:"max_price,omitempty"`
	Category string   `json:"category,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// NaturalSearchResult is the response of the natural-language search
// endpoint.
type NaturalSearchResult struct {
	Products       []models.Product
	FiltersApplied map[string]any
	FallbackUsed   bool
	Message        string
}

// SearchNatural runs the backend's natural-language product search.
// Product search works for guests too, so no auth is required.
func (c *Client) SearchNatural(ctx context.Context, query string, override *Filters) (*NaturalSearchResult, error) {
	body := map[string]any{"query": query}
	if override != nil {
		body["override_filters"] = override
	}
	var resp struct {
		Products       []rawRecord    `json:"products"`
		FiltersApplied map[string]any `json:"filters_applied"`
		FallbackUsed   bool           `json:"fallback_used"`
		Message        string         `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/products/search-natural", nil, body, &resp, false); err != nil {
		return nil, err
	}
	result := &NaturalSearchResult{
		Products:       normalizeProducts(resp.Products),
		FiltersApplied: resp.FiltersApplied,
		FallbackUsed:   resp.FallbackUsed,
		Message:        resp.Message,
	}
	return result, nil
}

// SearchKeyword is the simpler keyword search fallback.
func (c *Client) SearchKeyword(ctx context.Context, query, category string) ([]models.Product, error) {
	q := url.Values{}
	q.Set("query", query)
	if category != "" {
		q.Set("category", category)
	}
	var resp struct {
		Products []rawRecord `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products/search", q, nil, &resp, false); err != nil {
		return nil, err
	}
	return normalizeProducts(resp.Products), nil
}

// ListProducts fetches the full catalog. The guided flows filter it
// client-side with strict attribute equality.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var resp struct {
		Products []rawRecord `json:"products"`
	}
	if err := c.do(ctx, http.MethodGet, "/products", nil, nil, &resp, false); err != nil {
		return nil, err
	}
	return normalizeProducts(resp.Products), nil
}
