package cache

import (
	"sync"
	"time"
)

// TTL holds one value per key with a shared time-to-live. Get reports
// whether the value is still fresh; stale values stay readable so callers
// can fall back to them when a refresh fails.
type TTL[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry[T]
}

type entry[T any] struct {
	value   T
	storedAt time.Time
}

func New[T any](ttl time.Duration) *TTL[T] {
	return &TTL[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[T]),
	}
}

// NewWithClock injects the clock, for deterministic expiry tests.
func NewWithClock[T any](ttl time.Duration, now func() time.Time) *TTL[T] {
	c := New[T](ttl)
	c.now = now
	return c
}

// Get returns the cached value and whether it is fresh. A zero value with
// fresh=false means the key was never set.
func (c *TTL[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, c.now().Sub(e.storedAt) < c.ttl
}

func (c *TTL[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, storedAt: c.now()}
}

func (c *TTL[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *TTL[T]) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}
