package resolve

import (
	"sync"
	"sync/atomic"

	"github.com/dshills/keylens/internal/key"
	"github.com/dshills/keylens/internal/keyconfig"
	"github.com/dshills/keylens/internal/scope"
)

// QueryKey identifies one cached usage map: every parameter that can
// change which bindings a key label resolves to.
type QueryKey struct {
	Context       scope.Context
	Mods          key.Modifier
	IncludeGlobal bool
	HideModal     bool
	Mode          string
}

// Cache memoizes per-label usage answers keyed by query parameters. A
// configuration fingerprint guards the whole cache: when the fingerprint
// observed at validation time differs from the stored one, every entry
// is dropped.
type Cache struct {
	mu      sync.RWMutex
	entries map[QueryKey]map[string]bool
	stamp   keyconfig.Fingerprint

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[QueryKey]map[string]bool)}
}

// Validate compares fp against the stamped fingerprint. On mismatch the
// cache is cleared, fp becomes the new stamp, and Validate reports
// false.
func (c *Cache) Validate(fp keyconfig.Fingerprint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stamp.Equal(fp) {
		return true
	}
	c.entries = make(map[QueryKey]map[string]bool)
	c.stamp = fp
	return false
}

// Lookup returns the cached usage answer for label under k.
func (c *Cache) Lookup(k QueryKey, label string) (used, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	m, ok := c.entries[k]
	if !ok {
		c.misses.Add(1)
		return false, false
	}
	used, ok = m[label]
	if !ok {
		c.misses.Add(1)
		return false, false
	}
	c.hits.Add(1)
	return used, true
}

// Store records the usage answer for label under k.
func (c *Cache) Store(k QueryKey, label string, used bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.entries[k]
	if !ok {
		m = make(map[string]bool)
		c.entries[k] = m
	}
	m[label] = used
}

// Clear drops every cached entry and the fingerprint stamp.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[QueryKey]map[string]bool)
	c.stamp = nil
}

// Stats returns the lifetime hit and miss counts. Counters survive
// Clear so they describe overall cache effectiveness.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
