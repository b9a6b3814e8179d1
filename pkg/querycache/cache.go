// Package querycache is a keyed asynchronous read cache for backend
// query results. Results live until invalidated or until their
// staleness window passes; concurrent reads of one key share a single
// in-flight fetch. Mutating callers invalidate the keys whose
// underlying rows they changed — under-invalidation shows stale data,
// over-invalidation only costs an extra fetch.
package querycache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Staleness windows. Hierarchy lists refetch after five minutes even
// without an invalidation; session-lifetime entries live until
// explicitly invalidated.
const (
	HierarchyTTL = 5 * time.Minute
	SessionTTL   = time.Duration(0)
)

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) fresh(now time.Time) bool {
	if e.ttl == SessionTTL {
		return true
	}
	return now.Sub(e.storedAt) < e.ttl
}

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]entry
	group   singleflight.Group
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[Key]entry),
		now:     time.Now,
	}
}

// newWithClock is used by tests to control staleness.
func newWithClock(now func() time.Time) *Cache {
	c := New()
	c.now = now
	return c
}

// Get returns the cached value for key, or runs fetch and caches the
// result for ttl. Concurrent calls for the same key while a fetch is in
// flight share that one fetch. Errors are never cached.
func Get[T any](ctx context.Context, c *Cache, key Key, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	now := c.now()
	c.mu.Unlock()

	if ok && e.fresh(now) {
		return e.value.(T), nil
	}

	v, err, _ := c.group.Do(string(key), func() (any, error) {
		// Re-check: another caller may have completed and stored while
		// this one waited on the flight group.
		c.mu.Lock()
		e, ok := c.entries[key]
		now := c.now()
		c.mu.Unlock()
		if ok && e.fresh(now) {
			return e.value, nil
		}

		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{value: value, storedAt: c.now(), ttl: ttl}
		c.mu.Unlock()
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops the given keys. The next Get for each hits the
// network.
func (c *Cache) Invalidate(keys ...Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

// InvalidatePrefix drops every key under a prefix.
func (c *Cache) InvalidatePrefix(prefixes ...Prefix) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		for _, p := range prefixes {
			if p.Matches(k) {
				delete(c.entries, k)
				break
			}
		}
	}
}

// Clear empties the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[Key]entry)
}

// Len reports how many entries are cached, fresh or stale.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
