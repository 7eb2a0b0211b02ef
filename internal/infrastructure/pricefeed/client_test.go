package pricefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiwicart/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://feed.example.com")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://feed.example.com", client.baseURL)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestSetDebug(t *testing.T) {
	client := NewClient("test-api-key", "https://feed.example.com")

	assert.False(t, client.debug)

	client.SetDebug(true)
	assert.True(t, client.debug)
}

func TestBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{1, 500 * time.Millisecond},
		{2, 1000 * time.Millisecond},
		{3, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, backoff(tt.attempt))
	}
}

func TestFetchStorePrices_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/prices", r.URL.Path)
		assert.Equal(t, "countdown-cbd", r.URL.Query().Get("store"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "KiwiCart/1.0", r.Header.Get("User-Agent"))

		response := feedResponse{
			Products: []feedProduct{
				{SKU: "sku-1", Name: "Trim Milk 2L", Price: 4.50, StoreID: "countdown-cbd", Size: "2L"},
				// Nameless and zero-price rows are dropped by the mapper.
				{SKU: "sku-2", Name: "", Price: 3.00, StoreID: "countdown-cbd"},
				{SKU: "sku-3", Name: "Free Sample", Price: 0, StoreID: "countdown-cbd"},
			},
			Total: 3,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL)

	products, err := client.FetchStorePrices(context.Background(), "countdown-cbd")

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "sku-1", products[0].ID)
	assert.Equal(t, "Trim Milk 2L", products[0].Name)
	assert.Equal(t, 4.50, products[0].Price)
	assert.Equal(t, "2L", products[0].Size)
}

func TestFetchStorePrices_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(feedResponse{
			Products: []feedProduct{{SKU: "sku-1", Name: "Milk", Price: 4.50}},
		})
	}))
	defer server.Close()

	client := NewClient("", server.URL)

	products, err := client.FetchStorePrices(context.Background(), "store-1")

	require.NoError(t, err)
	assert.Len(t, products, 1)
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestFetchStorePrices_GivesUpAfterThreeAttempts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("", server.URL)

	_, err := client.FetchStorePrices(context.Background(), "store-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPriceFeedFailure)
}

func TestFetchStorePrices_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("", server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchStorePrices(ctx, "store-1")
	require.Error(t, err)
}

func TestMapFeedProducts(t *testing.T) {
	feed := []feedProduct{
		{SKU: "a", Name: "Milk", Price: 4.50, Barcode: "9421000000001", Category: "dairy"},
		{SKU: "b", Name: "", Price: 2.00},
		{SKU: "c", Name: "Loss Leader", Price: -1},
	}

	products := mapFeedProducts(feed)

	require.Len(t, products, 1)
	assert.Equal(t, "a", products[0].ID)
	assert.Equal(t, "9421000000001", products[0].Barcode)
	assert.Equal(t, "dairy", products[0].Category)
}
