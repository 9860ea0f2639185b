package rematch

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const DefaultCacheSize = 50

type cacheKey struct {
	source string
	flags  Flags
}

// Cache keeps compiled patterns keyed by source and compile flags. It is
// safe for concurrent use; the least recently used pattern is evicted
// once the cache is full.
type Cache struct {
	patterns *lru.Cache[cacheKey, *Pattern]
	timeout  time.Duration
}

// NewCache creates a cache of at most size patterns. Patterns compiled
// by this cache give up matching after timeout, 0 means no limit.
func NewCache(size int, timeout time.Duration) (*Cache, error) {
	patterns, err := lru.New[cacheKey, *Pattern](size)
	if err != nil {
		return nil, fmt.Errorf("create pattern cache of size %d: %w", size, err)
	}
	return &Cache{patterns: patterns, timeout: timeout}, nil
}

// Compile returns the cached pattern for (source, flags) or compiles it.
// Two goroutines racing on the same key may both compile, the pattern
// stored first is returned to both.
func (c *Cache) Compile(source string, flags Flags) (*Pattern, error) {
	key := cacheKey{source, flags & FLAG_COMPILE_MASK}
	if p, ok := c.patterns.Get(key); ok {
		return p, nil
	}

	p, err := compilePattern(source, key.flags, c.timeout)
	if err != nil {
		return nil, err
	}
	if prev, ok, _ := c.patterns.PeekOrAdd(key, p); ok {
		return prev, nil
	}
	return p, nil
}

// Len returns the number of cached patterns.
func (c *Cache) Len() int {
	return c.patterns.Len()
}

// Purge drops every cached pattern.
func (c *Cache) Purge() {
	c.patterns.Purge()
}
