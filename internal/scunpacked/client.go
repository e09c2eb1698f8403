// Package scunpacked provides rate-limited access to the scunpacked
// community game-data API: the ship list, the per-ship hardpoint documents,
// and the item catalog. The API is community-maintained with no schema
// guarantees, so all record types here are deliberately loose; the catalog
// package owns normalization.
package scunpacked

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL   = "https://scunpacked.com/api"
	DefaultUserAgent = "SC-Fleet-Manager/1.0"
	DefaultRateLimit = 2 // requests per second
	DefaultBurst     = 5 // allow bursts
)

// Client is a rate-limited HTTP client for the scunpacked API.
type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	baseURL     string
	userAgent   string
}

// NewClient creates a new rate-limited scunpacked client.
func NewClient(baseURL string, rateLimit float64, burst int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if rateLimit <= 0 {
		rateLimit = DefaultRateLimit
	}
	if burst <= 0 {
		burst = DefaultBurst
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), burst),
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		userAgent:   DefaultUserAgent,
	}
}

// Get performs a rate-limited GET request against an API path.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 50<<20)) // items.json is large
	if err != nil {
		return nil, err
	}

	// Handle rate limiting (429 Too Many Requests)
	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := resp.Header.Get("Retry-After")
		if retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil {
				time.Sleep(time.Duration(seconds) * time.Second)
				// Retry once
				return c.Get(ctx, path)
			}
		}
		return nil, fmt.Errorf("rate limited (429)")
	}

	if resp.StatusCode != http.StatusOK {
		limit := len(body)
		if limit > 200 {
			limit = 200
		}
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body[:limit]))
	}

	return body, nil
}

// FetchShips retrieves the raw ship list.
func (c *Client) FetchShips(ctx context.Context) ([]RawShip, error) {
	body, err := c.Get(ctx, "/v2/ships.json")
	if err != nil {
		return nil, fmt.Errorf("fetching ships: %w", err)
	}

	var ships []RawShip
	if err := json.Unmarshal(body, &ships); err != nil {
		return nil, fmt.Errorf("parsing ships: %w", err)
	}
	return ships, nil
}

// FetchShipPorts retrieves the hardpoint document for one ship class.
func (c *Client) FetchShipPorts(ctx context.Context, className string) (PortDoc, error) {
	path := fmt.Sprintf("/v2/ships/%s-ports.json", strings.ToLower(className))
	body, err := c.Get(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("fetching ports for %s: %w", className, err)
	}

	var doc PortDoc
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parsing ports for %s: %w", className, err)
	}
	return doc, nil
}

// FetchItems retrieves the raw item catalog.
func (c *Client) FetchItems(ctx context.Context) ([]RawItem, error) {
	body, err := c.Get(ctx, "/items.json")
	if err != nil {
		return nil, fmt.Errorf("fetching items: %w", err)
	}

	var items []RawItem
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("parsing items: %w", err)
	}
	return items, nil
}
