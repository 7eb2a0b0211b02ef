package cache

import (
	"sync"
	"time"

	"github.com/kiwicart/backend/internal/domain"
)

// entry is a cached value with its expiry instant.
type entry struct {
	value     interface{}
	expiresAt time.Time
}

// Memory is a thread-safe in-process TTL cache. It fronts the matching
// endpoints so repeated lookups for the same normalized product name skip
// recomputation.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	stop    chan struct{}
}

// NewMemory creates a cache whose entries live for ttl. A background sweeper
// evicts expired entries every ten minutes until Stop is called.
func NewMemory(ttl time.Duration) *Memory {
	c := &Memory{
		entries: make(map[string]entry),
		ttl:     ttl,
		stop:    make(chan struct{}),
	}
	go c.sweep()
	return c
}

// Get returns the cached value for key, or ErrCacheMiss when absent or
// expired.
func (c *Memory) Get(key string) (interface{}, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, domain.ErrCacheMiss
	}
	return e.value, nil
}

// Set stores value under key for the cache's TTL.
func (c *Memory) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Delete removes key if present.
func (c *Memory) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Len returns the number of stored entries, expired or not.
func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stop terminates the background sweeper.
func (c *Memory) Stop() {
	close(c.stop)
}

func (c *Memory) sweep() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, e := range c.entries {
				if now.After(e.expiresAt) {
					delete(c.entries, key)
				}
			}
			c.mu.Unlock()
		}
	}
}
