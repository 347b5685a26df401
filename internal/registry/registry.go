// Package registry provides a global registry for game factories.
// Games register themselves in init() functions so the platform and the
// CLI can discover and instantiate them without hardcoded imports.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vmarchenko/rockfall/internal/core"
)

// Game is the interface every playable mode must implement. Games
// contain pure logic with no external dependencies (especially no
// Bubble Tea); the platform handles input mapping, timing and styling.
type Game interface {
	// ID returns a unique identifier (e.g. "rockfall").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or restarts the game. The RuntimeConfig
	// carries screen dimensions and content selection.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The buffer is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the coarse session state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory. Typically called from a game's init().
// Panics if the ID is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	g := f()
	titles[id] = g.Title()
}

// List returns all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
