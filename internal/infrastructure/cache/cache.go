package cache

import (
	"sync"
	"time"
)

// Item is a cached value with its expiration instant.
type Item struct {
	Value      interface{}
	Expiration int64
}

// Cache is a small in-memory TTL cache used to serve repeated current-score
// reads between recomputes. Dashboards poll these endpoints aggressively, so
// even a short TTL takes real load off the ledger queries.
type Cache struct {
	items map[string]Item
	mu    sync.RWMutex
}

// New creates a cache and starts a background sweeper for expired entries.
func New() *Cache {
	c := &Cache{
		items: make(map[string]Item),
	}

	go func() {
		for {
			time.Sleep(time.Minute)
			c.DeleteExpired()
		}
	}()

	return c
}

// Set stores a value under key for the given duration.
func (c *Cache) Set(key string, value interface{}, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = Item{
		Value:      value,
		Expiration: time.Now().Add(duration).UnixNano(),
	}
}

// Get returns the cached value and whether a live entry was found.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, found := c.items[key]
	if !found || time.Now().UnixNano() > item.Expiration {
		return nil, false
	}
	return item.Value, true
}

// Delete removes one entry. Used to invalidate an assessment's cached
// breakdown right after a score commit.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}

// DeleteExpired removes all expired entries.
func (c *Cache) DeleteExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for k, v := range c.items {
		if now > v.Expiration {
			delete(c.items, k)
		}
	}
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]Item)
}
