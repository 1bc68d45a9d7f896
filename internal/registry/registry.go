// Package registry provides a global registry for board arrangements.
// Arrangements register themselves in init() functions, allowing the
// platform to discover and seed boards without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/panelboard/internal/engine"
)

// Board is the part of the engine an arrangement may drive. Arrangements
// only use inbound operations, so a seeded board obeys the same invariants
// as one built by hand.
type Board interface {
	Container() engine.Container
	Box(id engine.BoxID) (engine.BoxView, bool)
	AddBox() engine.BoxView
	PointerDown(id engine.BoxID, x, y float64, mode engine.Mode) error
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// Arrangement is a named recipe that seeds a fresh board.
type Arrangement interface {
	// ID returns a unique identifier (e.g., "cascade", "grid").
	// Used for CLI flags and the session journal.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Description returns a one-line summary of the resulting layout.
	Description() string

	// Seed populates an empty board.
	Seed(b Board) error
}

// Info contains metadata about a registered arrangement.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of an arrangement.
type Factory func() Arrangement

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
	mu        sync.RWMutex
)

// Register adds an arrangement factory to the registry.
// Typically called from an init() function.
// Panics if an arrangement with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: arrangement %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	a := f()
	infos[id] = Info{ID: id, Title: a.Title(), Description: a.Description()}
}

// List returns information about all registered arrangements, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new arrangement by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Arrangement, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown arrangement %q", id)
	}

	return f(), nil
}

// Exists checks if an arrangement with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
