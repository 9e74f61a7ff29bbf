package stats

import "sync"

// Cache is a per-column statistic cache guarded by double-checked locking
// (spec §4.10/§5): read-check under RLock, then — only on a miss — Lock,
// re-check (a concurrent computation may have finished while this
// goroutine waited for the write lock), compute, store, return. Readers of
// an already-populated entry never take the write lock.
type Cache struct {
	mu     sync.RWMutex
	values map[Statistic]any
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{values: make(map[Statistic]any)}
}

// GetOrCompute returns the cached value for stat, computing and storing it
// via compute on a miss. A failed compute is not cached, so a later call
// may retry it.
func (c *Cache) GetOrCompute(stat Statistic, compute func() (any, error)) (any, error) {
	c.mu.RLock()
	if v, ok := c.values[stat]; ok {
		c.mu.RUnlock()
		return v, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.values[stat]; ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return nil, err
	}
	c.values[stat] = v
	return v, nil
}
