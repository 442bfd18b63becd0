package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/pcforge/backend/internal/domain"
	"golang.org/x/time/rate"
)

// listPageSize mirrors the store's own default "everything" page size
const listPageSize = "10000"

// Client handles communication with the external product catalog store
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog store client
func NewClient(baseURL string) *Client {
	// The store sits behind the shop's own API; keep well under its
	// request ceiling with a small burst for back-to-back tool calls.
	limiter := rate.NewLimiter(rate.Limit(5), 10)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug toggles request/response logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// doRequest executes an HTTP GET request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "PCForge/1.0")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}

	return resp, nil
}

// exponentialBackoff returns the wait duration before the given retry attempt
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(250<<(attempt-1)) * time.Millisecond
}

// ListProducts fetches the full product list from the catalog store.
// The store's list endpoint is paginated but defaults to returning
// everything; we request that page explicitly and filter in memory.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	endpoint := fmt.Sprintf("%s/api/products", c.baseURL)
	params := url.Values{}
	params.Add("limit", listPageSize)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	// Retry up to 3 times for transient failures
	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		resp, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] Store error (attempt %d) - Status: %d, Body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		var listResp listResponse
		if err := json.Unmarshal(body, &listResp); err != nil {
			return nil, fmt.Errorf("failed to decode catalog response: %w", err)
		}

		if !listResp.Success {
			lastErr = fmt.Errorf("%w: %s", domain.ErrCatalogUnavailable, listResp.Error)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		products := make([]domain.Product, 0, len(listResp.Products))
		for i := range listResp.Products {
			products = append(products, mapToProduct(&listResp.Products[i]))
		}

		if c.debug {
			log.Printf("[CATALOG] Fetched %d products", len(products))
		}
		return products, nil
	}

	return nil, lastErr
}
