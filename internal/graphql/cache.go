package graphql

import (
	"sync"
	"time"
)

type cachedResponse struct {
	data    []byte
	expires time.Time
}

// ResponseCache keeps query responses in memory, keyed by request payload.
type ResponseCache struct {
	entries map[string]cachedResponse
	ttl     time.Duration
	now     func() time.Time
	mx      sync.RWMutex
}

// NewResponseCache returns a cache whose entries live for ttl.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &ResponseCache{
		entries: make(map[string]cachedResponse),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (c *ResponseCache) Get(key string) ([]byte, bool) {
	c.mx.RLock()
	defer c.mx.RUnlock()

	e, ok := c.entries[key]
	if !ok || !c.now().Before(e.expires) {
		return nil, false
	}

	return e.data, true
}

func (c *ResponseCache) Set(key string, data []byte) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.entries[key] = cachedResponse{data: data, expires: c.now().Add(c.ttl)}
}

// Invalidate drops every entry.
func (c *ResponseCache) Invalidate() {
	c.mx.Lock()
	defer c.mx.Unlock()
	clear(c.entries)
}
