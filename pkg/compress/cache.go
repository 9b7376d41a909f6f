package compress

import (
	"crypto/sha256"
	"sync/atomic"

	"github.com/arthur-debert/massminify/pkg/types"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when a non-positive size is requested
const DefaultCacheSize = 256

type cacheKey struct {
	class types.AssetClass
	sum   [sha256.Size]byte
}

// Cached memoizes another Compressor. Failures are not cached.
type Cached struct {
	next   Compressor
	cache  *lru.Cache[cacheKey, []byte]
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCached wraps next with an LRU of the given size
func NewCached(next Compressor, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []byte](size)
	if err != nil {
		return nil, err
	}
	return &Cached{next: next, cache: cache}, nil
}

// Compress returns the cached output for identical input, or delegates
func (c *Cached) Compress(class types.AssetClass, src []byte) ([]byte, error) {
	key := cacheKey{class: class, sum: sha256.Sum256(src)}
	if out, ok := c.cache.Get(key); ok {
		c.hits.Add(1)
		return out, nil
	}
	c.misses.Add(1)

	out, err := c.next.Compress(class, src)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, out)
	return out, nil
}

// Stats returns the number of cache hits and misses so far
func (c *Cached) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
