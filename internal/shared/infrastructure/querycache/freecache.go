package querycache

import (
	"context"
	"time"

	"github.com/coocood/freecache"
)

// DefaultFreecacheSize is 16MB, far beyond what schedule lists need.
const DefaultFreecacheSize = 16 * 1024 * 1024

// FreecacheBackend is an in-process cache backend used when no Redis is
// configured (CLI local mode, tests).
type FreecacheBackend struct {
	cache *freecache.Cache
}

// NewFreecacheBackend creates an in-process backend. A non-positive size
// falls back to DefaultFreecacheSize.
func NewFreecacheBackend(size int) *FreecacheBackend {
	if size <= 0 {
		size = DefaultFreecacheSize
	}
	return &FreecacheBackend{cache: freecache.NewCache(size)}
}

func (b *FreecacheBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := b.cache.Get([]byte(key))
	if err != nil {
		// freecache only reports miss or expiry here.
		return nil, false, nil
	}
	return data, true, nil
}

func (b *FreecacheBackend) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	expire := 0
	if ttl > 0 {
		expire = int(ttl / time.Second)
		if expire == 0 {
			expire = 1
		}
	}
	return b.cache.Set([]byte(key), value, expire)
}

func (b *FreecacheBackend) Delete(ctx context.Context, key string) error {
	b.cache.Del([]byte(key))
	return nil
}
