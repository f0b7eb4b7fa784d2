package noise

import (
	"fmt"
	"sync"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

type coord [3]float64

// Cached memoizes another field keyed by the exact coordinate triple.
// Repeated lookups return the stored value without re-evaluating the
// wrapped field. It is safe for concurrent use.
type Cached struct {
	field Field

	mu     sync.RWMutex
	values map[coord]float64

	// bounded is set when the cache has a fixed capacity; values is unused then.
	bounded *lru.Cache[coord, float64]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCached wraps f with an unbounded cache.
func NewCached(f Field) *Cached {
	return &Cached{
		field:  f,
		values: make(map[coord]float64),
	}
}

// NewBoundedCached wraps f with a cache holding at most size entries,
// evicting the least recently used coordinate first.
func NewBoundedCached(f Field, size int) (*Cached, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: cache size %d must be > 0", ErrInvalidParameters, size)
	}
	bounded, err := lru.New[coord, float64](size)
	if err != nil {
		return nil, err
	}
	return &Cached{field: f, bounded: bounded}, nil
}

// Value returns the cached value at (x, y, z), computing it on first use.
func (c *Cached) Value(x, y, z float64) float64 {
	key := coord{x, y, z}

	if c.bounded != nil {
		if v, ok := c.bounded.Get(key); ok {
			c.hits.Add(1)
			return v
		}
		v := c.field.Value(x, y, z)
		c.bounded.Add(key, v)
		c.misses.Add(1)
		return v
	}

	c.mu.RLock()
	v, ok := c.values[key]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
		return v
	}

	v = c.field.Value(x, y, z)
	c.mu.Lock()
	c.values[key] = v
	c.mu.Unlock()
	c.misses.Add(1)
	return v
}

// Len returns the number of cached coordinates.
func (c *Cached) Len() int {
	if c.bounded != nil {
		return c.bounded.Len()
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.values)
}

// Stats returns how many lookups were served from the cache and how many
// had to evaluate the wrapped field.
func (c *Cached) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Unwrap returns the wrapped field.
func (c *Cached) Unwrap() Field {
	return c.field
}
