package cache

import (
	"context"
	"sync"
	"time"
)

// DefaultMemoryCapacity bounds the in-process cache. Full results carry
// encoded PNGs, so a small cap keeps the server's footprint predictable.
const DefaultMemoryCapacity = 100

// MemoryCache is an in-process cache with per-entry TTLs and a hard entry
// cap. When full, the oldest entry by insertion is evicted.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]memoryEntry
	order    []string
	capacity int
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewMemoryCache creates a memory cache. A capacity of zero or less uses
// DefaultMemoryCapacity.
func NewMemoryCache(capacity int) Cache {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &MemoryCache{
		entries:  make(map[string]memoryEntry),
		capacity: capacity,
	}
}

// Get retrieves a value, expiring it lazily.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.remove(key)
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value, evicting the oldest entry when at capacity.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.remove(c.order[0])
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	if _, exists := c.entries[key]; !exists {
		c.order = append(c.order, key)
	}
	c.entries[key] = entry
	return nil
}

// Delete removes a value.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
	return nil
}

// Close clears the cache.
func (c *MemoryCache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]memoryEntry)
	c.order = nil
	return nil
}

// Len reports the current entry count.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// remove deletes key from both the map and the insertion order.
// Callers must hold the lock.
func (c *MemoryCache) remove(key string) {
	if _, ok := c.entries[key]; !ok {
		return
	}
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
