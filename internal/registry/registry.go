// Package registry maps game IDs to factories so front ends can create a
// game without importing its package directly. Games register themselves
// in init().
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is what every front end drives: pure logic stepped at a fixed tick,
// rendered into a core.Screen. Implementations must not depend on a UI
// toolkit.
type Game interface {
	// ID returns the identifier used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts a new session from the runtime configuration.
	Reset(cfg core.RuntimeConfig)

	// Step consumes exactly one input frame and advances one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. It must not change game state.
	Render(dst *core.Screen)

	// State returns score, best score and status flags.
	State() core.GameState
}

// Factory creates a new, not yet reset, game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns all registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a game ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
