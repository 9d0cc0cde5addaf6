package services

import (
	"sync"
	"time"
)

// Cache is a process-wide key -> (value, expiry) store with a fixed TTL per
// entry. Entries are invalidated by expiry only; the write path never evicts,
// so cached reads can lag writes by up to the TTL.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
	now     func() time.Time // swapped in tests
}

type cacheEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

// Remember returns the cached value for key, computing and storing it via fn
// when the entry is missing or expired. Errors from fn are returned without
// caching anything.
func (c *Cache) Remember(key string, fn func() (interface{}, error)) (interface{}, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	// Computed outside the lock; concurrent callers may compute the same
	// key twice and the last write wins.
	value, err := fn()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
	return value, nil
}

// Flush drops all entries. Used by tests.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
