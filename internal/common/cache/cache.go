// Package cache provides a small in-memory TTL cache. It is the
// explicitly owned, injectable replacement for ambient module-level
// lookup maps: the component that needs cached data receives a *TTL
// rather than reaching for package state.
package cache

import (
	"sync"
	"time"
)

// TTL is a concurrency-safe map with per-entry expiry.
type TTL[V any] struct {
	mu  sync.RWMutex
	ttl time.Duration

	entries map[string]entry[V]

	janitorStop chan struct{}
}

// entry wraps a cached value with an expiration time.
type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// New creates a TTL cache. A non-positive ttl defaults to one hour.
func New[V any](ttl time.Duration) *TTL[V] {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TTL[V]{
		ttl:     ttl,
		entries: make(map[string]entry[V]),
	}
}

// Set stores a value under key for the cache's TTL.
func (c *TTL[V]) Set(key string, value V) {
	if c == nil || key == "" {
		return
	}
	exp := time.Now().Add(c.ttl)

	c.mu.Lock()
	c.entries[key] = entry[V]{value: value, expiresAt: exp}
	c.mu.Unlock()
}

// Get returns the cached value for key, if present and not expired.
func (c *TTL[V]) Get(key string) (V, bool) {
	var zero V
	if c == nil || key == "" {
		return zero, false
	}

	c.mu.RLock()
	item, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return zero, false
	}

	if time.Now().After(item.expiresAt) {
		// Expired - evict eagerly
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return zero, false
	}

	return item.value, true
}

// PurgeExpired removes expired entries.
func (c *TTL[V]) PurgeExpired() {
	if c == nil {
		return
	}
	now := time.Now()

	c.mu.Lock()
	for k, v := range c.entries {
		if now.After(v.expiresAt) {
			delete(c.entries, k)
		}
	}
	c.mu.Unlock()
}

// Len returns the number of non-expired entries.
func (c *TTL[V]) Len() int {
	if c == nil {
		return 0
	}
	c.PurgeExpired()

	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartJanitor starts a goroutine that periodically purges expired
// entries and returns a stop function. A non-positive interval
// defaults to five minutes.
func (c *TTL[V]) StartJanitor(interval time.Duration) func() {
	if c == nil {
		return func() {}
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	c.mu.Lock()
	if c.janitorStop != nil {
		close(c.janitorStop)
	}
	stop := make(chan struct{})
	c.janitorStop = stop
	c.mu.Unlock()

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.PurgeExpired()
			case <-stop:
				return
			}
		}
	}()

	return func() {
		c.mu.Lock()
		if c.janitorStop != nil {
			close(c.janitorStop)
			c.janitorStop = nil
		}
		c.mu.Unlock()
	}
}
