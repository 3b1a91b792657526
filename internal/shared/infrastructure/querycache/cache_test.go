package querycache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(ttl time.Duration) *Cache {
	return New(NewFreecacheBackend(0), ttl)
}

func TestUserKeyIncludesScope(t *testing.T) {
	assert.Equal(t, "schedule.list:user:u1", UserKey("schedule.list", "u1"))
	assert.NotEqual(t, UserKey("schedule.list", "u1"), UserKey("schedule.list", "u2"))
}

func TestCachePutAndGet(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()
	key := UserKey("schedule.list", "u1")

	_, ok, err := Get[[]string](ctx, cache, key)
	require.NoError(t, err)
	assert.False(t, ok)

	gen := cache.Generation(key)
	stored, err := Put(ctx, cache, key, gen, []string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, stored)

	value, ok, err := Get[[]string](ctx, cache, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, value)
}

func TestCacheInvalidateRemovesEntry(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()
	key := UserKey("schedule.list", "u1")

	gen := cache.Generation(key)
	_, err := Put(ctx, cache, key, gen, []string{"a"})
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx, key))

	_, ok, err := Get[[]string](ctx, cache, key)
	require.NoError(t, err)
	assert.False(t, ok, "invalidated entry must never be served")
}

func TestCacheDiscardsStaleGenerations(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()
	key := UserKey("schedule.list", "u1")

	// A fetch snapshots the generation, then an invalidation races ahead
	// of its completion.
	gen := cache.Generation(key)
	require.NoError(t, cache.Invalidate(ctx, key))

	stored, err := Put(ctx, cache, key, gen, []string{"stale"})
	require.NoError(t, err)
	assert.False(t, stored, "result from a superseded fetch must be discarded")

	_, ok, err := Get[[]string](ctx, cache, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheEntriesExpireAfterStalenessWindow(t *testing.T) {
	cache := newTestCache(time.Second)
	ctx := context.Background()
	key := UserKey("schedule.list", "u1")

	_, err := Put(ctx, cache, key, cache.Generation(key), []string{"a"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, ok, err := Get[[]string](ctx, cache, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheKeysAreScopedPerUser(t *testing.T) {
	cache := newTestCache(time.Minute)
	ctx := context.Background()

	keyA := UserKey("schedule.list", "u1")
	keyB := UserKey("schedule.list", "u2")

	_, err := Put(ctx, cache, keyA, cache.Generation(keyA), []string{"u1-data"})
	require.NoError(t, err)

	_, ok, err := Get[[]string](ctx, cache, keyB)
	require.NoError(t, err)
	assert.False(t, ok, "one user's cache entry must not be visible to another")
}
