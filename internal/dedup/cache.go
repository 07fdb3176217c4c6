// Package dedup enforces the at-most-one-insert-per-source_id discipline
// shared by every source adapter writing into the lead store.
package dedup

import "sync"

// Cache is the run-scoped set of known source_ids. It is preloaded once at
// run start and shared by every adapter in the run, so a lead inserted by an
// earlier adapter is immediately visible to later ones. Safe for concurrent
// use when adapters run in parallel.
type Cache struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{ids: make(map[string]struct{})}
}

// Load replaces the cache contents with the given ids.
func (c *Cache) Load(ids []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = make(map[string]struct{}, len(ids))
	for _, id := range ids {
		c.ids[id] = struct{}{}
	}
}

// Contains reports whether the source_id is known.
func (c *Cache) Contains(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.ids[id]
	return ok
}

// Add marks a source_id as known.
func (c *Cache) Add(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids[id] = struct{}{}
}

// Len returns the number of known source_ids.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.ids)
}
