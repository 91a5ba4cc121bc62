package dao

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long decoded records are served without refetching.
const DefaultCacheTTL = 5 * time.Second

type cacheEntry struct {
	objects []Object
	expires time.Time
}

// ResourceCache keeps decoded records per resource so the table and chart
// loaders do not decode the same payload twice. Raw payloads are cached
// separately by the GraphQL client. A TTL of zero disables caching.
type ResourceCache struct {
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
	mx      sync.RWMutex
}

// NewResourceCache returns a cache holding entries for ttl.
func NewResourceCache(ttl time.Duration) *ResourceCache {
	return &ResourceCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get returns the live records of a resource.
func (c *ResourceCache) Get(rid string) ([]Object, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	e, ok := c.entries[rid]
	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}

	return e.objects, true
}

// Set stores the records of a resource.
func (c *ResourceCache) Set(rid string, oo []Object) {
	if c.ttl <= 0 {
		return
	}
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries[rid] = cacheEntry{objects: oo, expires: c.now().Add(c.ttl)}
}

// Clear drops every entry.
func (c *ResourceCache) Clear() {
	c.mx.Lock()
	defer c.mx.Unlock()
	clear(c.entries)
}
