// Package registry provides a global registry of level collections.
// Collections register themselves in init() functions, allowing the platform
// to discover level sets without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Collection is a named source of levels.
type Collection struct {
	ID    string
	Title string
	// Load returns the collection's levels in play order.
	Load func() ([]levels.Level, error)
}

// CollectionInfo contains metadata about a registered collection.
type CollectionInfo struct {
	ID    string
	Title string
}

var (
	collections = make(map[string]Collection)
	mu          sync.RWMutex
)

// Register adds a collection to the registry.
// Typically called from an init() function.
// Panics if a collection with the same ID is already registered.
func Register(c Collection) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := collections[c.ID]; exists {
		panic(fmt.Sprintf("registry: collection %q already registered", c.ID))
	}
	if c.Load == nil {
		panic(fmt.Sprintf("registry: collection %q has no loader", c.ID))
	}

	collections[c.ID] = c
}

// List returns information about all registered collections, sorted by ID.
func List() []CollectionInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]CollectionInfo, 0, len(collections))
	for id, c := range collections {
		result = append(result, CollectionInfo{ID: id, Title: c.Title})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the collection registered under id.
func Get(id string) (Collection, error) {
	mu.RLock()
	defer mu.RUnlock()

	c, ok := collections[id]
	if !ok {
		return Collection{}, fmt.Errorf("registry: unknown collection %q", id)
	}
	return c, nil
}

// Exists checks if a collection with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := collections[id]
	return ok
}

// LoadAll loads every registered collection in ID order.
// Level IDs are not required to be unique across collections; the first
// occurrence wins in FindLevel.
func LoadAll() ([]levels.Level, error) {
	var all []levels.Level
	for _, info := range List() {
		c, err := Get(info.ID)
		if err != nil {
			return nil, err
		}
		lvls, err := c.Load()
		if err != nil {
			return nil, fmt.Errorf("registry: loading %q: %w", info.ID, err)
		}
		all = append(all, lvls...)
	}
	return all, nil
}

// FindLevel searches every registered collection for a level ID.
func FindLevel(id string) (levels.Level, error) {
	all, err := LoadAll()
	if err != nil {
		return levels.Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return levels.Level{}, fmt.Errorf("registry: %w: %s", levels.ErrNotFound, id)
}
