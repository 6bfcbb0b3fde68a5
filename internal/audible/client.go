// file: internal/audible/client.go
// version: 1.2.0
// guid: 3c4d5e6f-7a8b-9c0d-1e2f-3a4b5c6d7e8f

// Package audible scrapes audible.com search and product pages for audiobook
// metadata. The markup is scraped ad hoc and can drift; parse failures on
// individual fields degrade to empty values rather than errors.
package audible

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/time/rate"

	"github.com/jeffjose/audtag/internal/cache"
)

const (
	baseURL      = "https://www.audible.com"
	urlOverrides = "ipRedirectOverride=true&overrideBaseCountry=true"
	userAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	requestTimeout = 30 * time.Second
	cacheTTL       = 15 * time.Minute
)

// Client fetches and parses Audible pages. Requests are rate limited and
// responses cached so repeated searches within a run hit the network once.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	searchCache *cache.Cache[[]SearchResult]
	detailCache *cache.Cache[*BookMetadata]
	baseURL     string
	Debug       bool
}

// NewClient returns a Client with sane defaults: 30s request timeout, two
// requests per second sustained, 15 minute response cache.
func NewClient() *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: requestTimeout},
		limiter:     rate.NewLimiter(rate.Every(500*time.Millisecond), 2),
		searchCache: cache.New[[]SearchResult](cacheTTL),
		detailCache: cache.New[*BookMetadata](cacheTTL),
		baseURL:     baseURL,
	}
}

// SetBaseURL points the client at a different host. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

func (c *Client) searchURL(query string) string {
	return c.baseURL + "/search?" + urlOverrides + "&keywords=" + url.QueryEscape(query)
}

// fetch GETs a page through the rate limiter and parses it as HTML.
func (c *Client) fetch(ctx context.Context, pageURL string) (*html.Node, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("error waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, pageURL)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error parsing page: %w", err)
	}
	return doc, nil
}
