// Package remote is the HTTP client for the backend store. Every call is a
// fresh request (no caching); raw JSON is normalized into models types at
// this boundary so the rest of the core never sees backend shape drift.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var (
	// ErrUnauthorized is returned before any network call when no bearer
	// token is available, and on a 401 response.
	ErrUnauthorized = errors.New("remote: authentication required")
	ErrNotFound     = errors.New("remote: not found")
)

// Client talks to the backend REST API with bearer-token auth.
type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// NewClient builds a client. token is read per request so a login/logout
// between calls takes effect immediately.
func NewClient(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		token:   token,
	}
}

// do issues one JSON request. When needAuth is set and no token is stored,
// it fails fast with ErrUnauthorized without touching the network.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, needAuth bool) error {
	tok := c.token()
	if needAuth && tok == "" {
		return ErrUnauthorized
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("remote: encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("remote: %s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("remote: decode %s %s: %w", method, path, err)
	}
	return nil
}
