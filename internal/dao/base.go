package dao

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Resource is the base struct that all specific DAOs embed.
// It provides factory access, resource identification, and caching.
type Resource struct {
	Factory
	rid    *ResourceID
	cache  *ResourceCache
	logger *zap.Logger
	mx     sync.RWMutex
}

// Init initializes the Resource with factory and resource ID.
func (r *Resource) Init(f Factory, rid *ResourceID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.rid = rid
}

// ResourceID returns the resource identifier.
func (r *Resource) ResourceID() *ResourceID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.rid
}

// SetCache sets the resource cache.
func (r *Resource) SetCache(cache *ResourceCache) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.cache = cache
}

// SetLogger sets the resource logger.
func (r *Resource) SetLogger(l *zap.Logger) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.logger = l
}

func (r *Resource) getLogger() *zap.Logger {
	r.mx.RLock()
	defer r.mx.RUnlock()
	if r.logger == nil {
		return zap.NewNop()
	}
	return r.logger
}

func (r *Resource) getFactory() Factory {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.Factory
}

func (r *Resource) getCache() *ResourceCache {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.cache
}

func (r *Resource) cacheKey() string {
	r.mx.RLock()
	defer r.mx.RUnlock()
	if r.rid == nil {
		return "unknown"
	}
	return r.rid.String()
}

// query runs a GraphQL query through the factory connection.
func (r *Resource) query(ctx context.Context, q string) ([]byte, error) {
	f := r.getFactory()
	if f == nil || f.Client() == nil {
		return nil, fmt.Errorf("%s: no connection configured", r.cacheKey())
	}
	return f.Client().Query(ctx, q, nil)
}

// list serves objects from cache or loads them with fetch.
func (r *Resource) list(ctx context.Context, fetch func(context.Context) ([]Object, error)) ([]Object, error) {
	key := r.cacheKey()
	if c := r.getCache(); c != nil {
		if oo, ok := c.Get(key); ok {
			r.getLogger().Debug("Serving cached records", zap.String("rid", key), zap.Int("count", len(oo)))
			return oo, nil
		}
	}

	oo, err := fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", key, err)
	}
	if c := r.getCache(); c != nil {
		c.Set(key, oo)
	}

	return oo, nil
}
