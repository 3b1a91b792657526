// Package querycache provides the cached-query layer between read handlers
// and the document store. Entries are keyed by operation kind plus scope
// parameters (the user id for per-user reads), expire after a staleness
// window, and are invalidated synchronously by mutations. A per-key
// generation counter guards against stale in-flight responses: a fetch
// that started before an invalidation can never overwrite fresher state.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Backend stores serialized cache entries.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// UserKey builds a cache key for a per-user operation. The user id is part
// of every per-user key so entries can never leak across scopes.
func UserKey(operation, userID string) string {
	return fmt.Sprintf("%s:user:%s", operation, userID)
}

// Cache is the coherence layer on top of a Backend.
type Cache struct {
	backend Backend
	ttl     time.Duration

	mu          sync.Mutex
	generations map[string]uint64
}

// New creates a cache with the given staleness window. Entries older than
// the window expire from the backend and become eligible for background
// refresh.
func New(backend Backend, ttl time.Duration) *Cache {
	return &Cache{
		backend:     backend,
		ttl:         ttl,
		generations: make(map[string]uint64),
	}
}

// TTL returns the configured staleness window.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Generation returns the current generation for a key. Callers snapshot it
// before starting a fetch and pass it back to Put.
func (c *Cache) Generation(key string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[key]
}

// Invalidate removes the entry for key and bumps its generation. It is
// synchronous: once Invalidate returns, no read of the key can observe the
// pre-invalidation value, and any fetch started before the call is
// discarded on arrival.
func (c *Cache) Invalidate(ctx context.Context, key string) error {
	c.mu.Lock()
	c.generations[key]++
	c.mu.Unlock()
	return c.backend.Delete(ctx, key)
}

// GetBytes returns the cached value for key, if present.
func (c *Cache) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	return c.backend.Get(ctx, key)
}

// PutBytes stores value for key unless the key's generation has advanced
// past gen since the caller snapshotted it. Returns false when the value
// was discarded as stale.
func (c *Cache) PutBytes(ctx context.Context, key string, gen uint64, value []byte) (bool, error) {
	c.mu.Lock()
	current := c.generations[key]
	c.mu.Unlock()
	if current != gen {
		return false, nil
	}
	if err := c.backend.Set(ctx, key, value, c.ttl); err != nil {
		return false, err
	}
	return true, nil
}

// Get reads and decodes the cached value for key.
func Get[T any](ctx context.Context, c *Cache, key string) (T, bool, error) {
	var value T
	data, ok, err := c.GetBytes(ctx, key)
	if err != nil || !ok {
		return value, false, err
	}
	if err := json.Unmarshal(data, &value); err != nil {
		// A corrupt entry behaves like a miss; the caller re-fetches.
		return value, false, nil
	}
	return value, true, nil
}

// Put encodes and stores value for key, subject to the generation guard.
func Put[T any](ctx context.Context, c *Cache, key string, gen uint64, value T) (bool, error) {
	data, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	return c.PutBytes(ctx, key, gen, data)
}
