// Package registry keeps the playable maze variants. Variants register
// themselves in init() so the platform can list and create them by id
// without importing each one.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tilt-maze/internal/core"
)

// Game is what the platform hosts. Implementations hold pure state with no
// Bubble Tea dependency; the platform owns input mapping, timing and output.
type Game interface {
	// ID returns the registry id (e.g. "maze", "maze_slide").
	ID() string

	// Title returns a human-readable name for display (e.g. "Tilt Maze").
	Title() string

	// Reset starts over from the level and seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step consumes one input frame. While playing, that is one motion sample.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State reports what the platform needs to schedule ticks.
	State() core.GameState
}

// Clocked is implemented by games that also need a wall-clock tick,
// delivered once per second alongside the sample ticks.
type Clocked interface {
	Clock() core.StepResult
}

// Pausable is implemented by games the platform can pause directly, for
// example when the terminal loses focus.
type Pausable interface {
	SetPaused(paused bool)
}

// Info describes a registered game.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game instance.
type Factory func() Game

// ErrUnknown is returned by Create for ids that were never registered.
var ErrUnknown = errors.New("registry: unknown game")

type entry struct {
	info    Info
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on an empty or duplicate id, which can
// only happen through a programming error in an init function.
func Register(info Info, f Factory) {
	if info.ID == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered game, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b Info) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// Lookup returns the info registered under id.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknown, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
