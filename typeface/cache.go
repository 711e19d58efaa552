package typeface

import (
	"fmt"
	"sync"
)

// Cache shares loaded Sources across render calls, keyed by a caller
// chosen font identifier such as a file path or a logical name. An
// entry loads at most once and lives until Clear.
//
// Cache is safe for concurrent use. Lookups of already-loaded fonts
// take only a read lock; the first load of a given identifier
// serializes behind the write lock so concurrent callers cannot load
// the same font twice.
type Cache struct {
	mu      sync.RWMutex
	sources map[string]*Source
}

// NewCache returns an empty cache. Construct one at startup and hand
// it to every component that loads fonts; nothing in this package
// keeps ambient global state.
func NewCache() *Cache {
	return &Cache{sources: make(map[string]*Source)}
}

// Load returns the Source for id, reading and parsing the file at
// path only on the first call for that id.
func (c *Cache) Load(id, path string) (*Source, error) {
	// Fast path: the font is usually already loaded.
	c.mu.RLock()
	if s, ok := c.sources[id]; ok {
		c.mu.RUnlock()
		return s, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring the write lock.
	if s, ok := c.sources[id]; ok {
		return s, nil
	}

	s, err := NewSourceFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("typeface: load %q: %w", id, err)
	}
	c.sources[id] = s
	return s, nil
}

// Register parses font data and stores it under id, for fonts that do
// not live on disk (embedded fallbacks, tests). Like Load, the first
// registration wins and later calls return the existing Source.
func (c *Cache) Register(id string, data []byte) (*Source, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.sources[id]; ok {
		return s, nil
	}
	s, err := NewSource(data)
	if err != nil {
		return nil, fmt.Errorf("typeface: register %q: %w", id, err)
	}
	c.sources[id] = s
	return s, nil
}

// Get returns the cached Source for id without loading anything.
func (c *Cache) Get(id string) (*Source, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sources[id]
	return s, ok
}

// Len returns the number of loaded fonts.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sources)
}

// Clear drops every cached Source. Faces created from the dropped
// Sources stay valid; Clear only severs the cache's references.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sources = make(map[string]*Source)
}
