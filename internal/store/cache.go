package store

import (
	"strings"
	"sync"
	"time"
)

const defaultCacheTTL = 5 * time.Minute

const (
	cacheKeyCategories       = "categories_sorted"
	cacheKeyProductsInStock  = "products_in_stock"
	cacheKeyProductsPopular  = "products_popular"
	cacheKeyProductsByCatPfx = "products_category_"
	cacheKeyBannersActive    = "banners_active"
)

type cacheEntry struct {
	data     any
	storedAt time.Time
}

// resultCache is a TTL cache for aggregate read results. Every key is a
// pure function of (operation, parameters). Expired entries are evicted
// lazily on the next lookup; mutations drop affected keys proactively
// through invalidate, so staleness never outlives a write.
type resultCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

func newResultCache(ttl time.Duration) *resultCache {
	return &resultCache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
	}
}

func (c *resultCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if time.Since(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return e.data, true
}

func (c *resultCache) set(key string, data any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{data: data, storedAt: time.Now()}
}

// invalidate drops every key starting with typePrefix, and, when id is
// non-empty, every key containing id. A mutation to entity type T calls
// this with T's key prefix so no cached result can outlive the write.
func (c *resultCache) invalidate(typePrefix, id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, typePrefix) || (id != "" && strings.Contains(key, id)) {
			delete(c.entries, key)
		}
	}
}
