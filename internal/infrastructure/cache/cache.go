package cache

import (
	lru "github.com/hashicorp/golang-lru"

	"jan-server/services/chat-insights/internal/infrastructure/metrics"
)

// Cache is a typed, thread-safe LRU cache keyed by string.
type Cache[V any] struct {
	name  string
	cache *lru.Cache
}

// New creates a cache holding at most maxSize entries.
func New[V any](name string, maxSize int) (*Cache[V], error) {
	c, err := lru.New(maxSize)
	if err != nil {
		return nil, err
	}
	return &Cache[V]{name: name, cache: c}, nil
}

// Get returns the cached value for key.
func (c *Cache[V]) Get(key string) (V, bool) {
	val, found := c.cache.Get(key)
	metrics.RecordCacheLookup(c.name, found)
	if !found {
		var zero V
		return zero, false
	}
	return val.(V), true
}

// Add stores value under key, evicting the least recently used entry if full.
func (c *Cache[V]) Add(key string, value V) {
	c.cache.Add(key, value)
}

// Purge removes every entry.
func (c *Cache[V]) Purge() {
	c.cache.Purge()
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	return c.cache.Len()
}
