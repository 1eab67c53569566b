// file: internal/catalog/client.go
// version: 1.0.0
// guid: e3a7c1f5-8d2b-4f9e-b604-a5c9d8e2f317

// Package catalog queries the O'Reilly learning platform search API for
// book metadata.
package catalog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/managedkaos/oreilly-book-searcher/internal/logging"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the production search endpoint.
const DefaultBaseURL = "https://learning.oreilly.com/api/v2/search/"

const userAgent = "oreilly-book-searcher/1.0 (https://github.com/managedkaos/oreilly-book-searcher)"

// Client fetches search results from the catalog API. Live requests are
// spaced out by the configured delay; cache hits never reach the client,
// so they are never throttled.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// NewClient creates a client against the production endpoint.
func NewClient(delay time.Duration) *Client {
	return NewClientWithBaseURL(DefaultBaseURL, delay)
}

// NewClientWithBaseURL creates a client with a custom base URL (for testing).
func NewClientWithBaseURL(baseURL string, delay time.Duration) *Client {
	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Search queries the catalog by title. On HTTP 200 it returns the raw body
// and the decoded response; any other status is an error. No retries: the
// caller treats a failed fetch as no data for that title.
func (c *Client) Search(ctx context.Context, title string) ([]byte, *SearchResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	searchURL := fmt.Sprintf("%s/?query=%s&field=title", c.baseURL, url.QueryEscape(title))
	logging.Debugf("searching for book: %s", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to search for %q: %w", title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("catalog returned status %d for %q", resp.StatusCode, title)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response for %q: %w", title, err)
	}

	parsed, err := ParseResponse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("bad response for %q: %w", title, err)
	}

	logging.Debugf("successfully retrieved data for: %s", title)
	return raw, parsed, nil
}
