package graphql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResponseCache_Expiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewResponseCache(time.Minute)
	c.now = func() time.Time { return now }

	c.Set("q", []byte("v"))
	v, ok := c.Get("q")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), v)

	now = now.Add(time.Minute)
	_, ok = c.Get("q")
	assert.False(t, ok)
}

func TestResponseCache_Invalidate(t *testing.T) {
	c := NewResponseCache(0)
	assert.Equal(t, DefaultCacheTTL, c.ttl)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))
	c.Invalidate()

	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("b")
	assert.False(t, ok)
}
