package cache

import (
	"errors"
	"testing"
	"time"

	"github.com/kiwicart/backend/internal/domain"
)

func TestMemoryCache(t *testing.T) {
	t.Run("set then get", func(t *testing.T) {
		c := NewMemory(time.Minute)
		defer c.Stop()

		c.Set("key", "value")

		got, err := c.Get("key")
		if err != nil {
			t.Fatalf("Get() error = %v, want nil", err)
		}
		if got != "value" {
			t.Errorf("Get() = %v, want value", got)
		}
	})

	t.Run("missing key returns ErrCacheMiss", func(t *testing.T) {
		c := NewMemory(time.Minute)
		defer c.Stop()

		_, err := c.Get("absent")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("Get() error = %v, want ErrCacheMiss", err)
		}
	})

	t.Run("expired entry returns ErrCacheMiss", func(t *testing.T) {
		c := NewMemory(10 * time.Millisecond)
		defer c.Stop()

		c.Set("key", "value")
		time.Sleep(20 * time.Millisecond)

		_, err := c.Get("key")
		if !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("Get() error = %v, want ErrCacheMiss after expiry", err)
		}
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		c := NewMemory(time.Minute)
		defer c.Stop()

		c.Set("key", "value")
		c.Delete("key")

		if _, err := c.Get("key"); !errors.Is(err, domain.ErrCacheMiss) {
			t.Errorf("Get() error = %v, want ErrCacheMiss after delete", err)
		}
	})

	t.Run("set overwrites", func(t *testing.T) {
		c := NewMemory(time.Minute)
		defer c.Stop()

		c.Set("key", "old")
		c.Set("key", "new")

		got, _ := c.Get("key")
		if got != "new" {
			t.Errorf("Get() = %v, want new", got)
		}
		if c.Len() != 1 {
			t.Errorf("Len() = %d, want 1", c.Len())
		}
	})

	t.Run("structured values round-trip", func(t *testing.T) {
		c := NewMemory(time.Minute)
		defer c.Stop()

		matches := []domain.ProductMatch{
			{Product: domain.Product{ID: "1", Name: "Milk 2L"}, Confidence: 0.9, MatchType: domain.MatchFuzzy},
		}
		c.Set("match:milk 2l", matches)

		got, err := c.Get("match:milk 2l")
		if err != nil {
			t.Fatalf("Get() error = %v", err)
		}
		cached, ok := got.([]domain.ProductMatch)
		if !ok {
			t.Fatalf("cached value has type %T", got)
		}
		if len(cached) != 1 || cached[0].Product.ID != "1" {
			t.Errorf("cached = %+v", cached)
		}
	})
}
