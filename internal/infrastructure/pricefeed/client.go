package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/kiwicart/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client fetches current shelf prices from the store price feed, used to seed
// the comparison catalog. The feed is rate limited upstream, so requests go
// through a local limiter and transient failures are retried with backoff.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a price feed client. The feed allows roughly one request
// per second sustained.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		rateLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}
}

// SetDebug toggles per-request logging.
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// feedProduct is the wire shape of one price feed entry.
type feedProduct struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	StoreID  string  `json:"store_id"`
	Size     string  `json:"size,omitempty"`
	Barcode  string  `json:"barcode,omitempty"`
	Category string  `json:"category,omitempty"`
}

type feedResponse struct {
	Products []feedProduct `json:"products"`
	Total    int           `json:"total"`
}

// FetchStorePrices retrieves the product list for one store.
func (c *Client) FetchStorePrices(ctx context.Context, storeID string) ([]domain.Product, error) {
	endpoint := fmt.Sprintf("%s/v1/prices", c.baseURL)
	params := url.Values{}
	params.Add("store", storeID)
	if c.apiKey != "" {
		params.Add("api_key", c.apiKey)
	}
	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doRequest(ctx, reqURL)
		if err != nil {
			if c.debug {
				log.Printf("[FEED] request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			if !sleepCtx(ctx, backoff(attempt)) {
				return nil, ctx.Err()
			}
			continue
		}

		var resp feedResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, fmt.Errorf("failed to decode feed response: %w", err)
		}

		if c.debug {
			log.Printf("[FEED] store %s: %d products", storeID, len(resp.Products))
		}
		return mapFeedProducts(resp.Products), nil
	}

	return nil, lastErr
}

func (c *Client) doRequest(ctx context.Context, reqURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "KiwiCart/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrPriceFeedFailure, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrPriceFeedFailure, resp.StatusCode)
	}
	return body, nil
}

func backoff(attempt int) time.Duration {
	return time.Duration(attempt*500) * time.Millisecond
}

// sleepCtx sleeps for d unless the context is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
