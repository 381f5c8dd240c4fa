package assets

import "sync"

// Cache holds at most one aggregated output per category.
// A slot is empty until Set is called and stays populated for the process lifetime.
type Cache struct {
	mu    sync.RWMutex
	slots map[Category]string
}

func NewCache() *Cache {
	return &Cache{slots: make(map[Category]string)}
}

// Get returns the cached output for category and whether the slot is populated.
func (c *Cache) Get(category Category) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.slots[category]
	return s, ok
}

func (c *Cache) Set(category Category, output string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[category] = output
}

// Len returns the number of populated slots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.slots)
}
