// Package memory contains the in-process media cache tier
package memory

import (
	"sync"

	"github.com/yourusername/telegram-media-vault/internal/domain/media/entities"
)

// Cache is a mutexed file-id → entry map shared by all in-flight dispatches.
// maxEntries == 0 means unbounded (the historical behavior for personal-use
// deployments); a positive bound evicts the oldest entry on overflow.
type Cache struct {
	mu         sync.RWMutex
	entries    map[string]entities.CacheEntry
	order      []string
	maxEntries int
}

// New creates a new Cache. maxEntries <= 0 disables eviction.
func New(maxEntries int) *Cache {
	return &Cache{
		entries:    make(map[string]entities.CacheEntry),
		maxEntries: maxEntries,
	}
}

// Put stores entry under fileID, overwriting any previous value
func (c *Cache) Put(fileID string, entry entities.CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[fileID]; !exists {
		c.order = append(c.order, fileID)
		if c.maxEntries > 0 && len(c.order) > c.maxEntries {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
	}
	c.entries[fileID] = entry
}

// Get returns the entry for fileID, if present
func (c *Cache) Get(fileID string) (entities.CacheEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[fileID]
	return entry, ok
}

// Keys returns a snapshot of the cached file identifiers
func (c *Cache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, len(c.order))
	copy(keys, c.order)
	return keys
}

// Delete removes fileID from the cache, reporting whether it was present
func (c *Cache) Delete(fileID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[fileID]; !ok {
		return false
	}
	delete(c.entries, fileID)
	for i, key := range c.order {
		if key == fileID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
