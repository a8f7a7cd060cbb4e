// Package registry lets playable modes register themselves from init()
// so the platform and CLI can list and create them by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/jigsaw-drop/internal/core"
)

// Game is the interface every playable mode implements.
// Games hold pure logic and know nothing about Bubble Tea; the platform
// maps input, drives ticks, plays audio cues and draws the screen.
type Game interface {
	// ID is the stable identifier used by the CLI and score storage.
	ID() string
	Title() string

	// Reset starts a fresh game. Called on start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Describer is implemented by games that provide a one-line description.
type Describer interface {
	Description() string
}

// Resizer is implemented by games that can adapt to a new screen size
// without losing progress. Other games are reset on resize.
type Resizer interface {
	Resize(width, height int)
}

// Sizer is implemented by games played on a fixed board.
type Sizer interface {
	BoardSize() (rows, cols int)
}

// GameInfo describes a registered game for menus and listings.
type GameInfo struct {
	ID          string
	Title       string
	Description string
	Rows        int // 0 when the game does not report a board
	Cols        int
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	factory Factory
	info    GameInfo
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory. The factory is called once to read the
// game's metadata. Duplicate IDs panic.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, info: describe(id, f())}
}

func describe(id string, g Game) GameInfo {
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Description()
	}
	if s, ok := g.(Sizer); ok {
		info.Rows, info.Cols = s.BoardSize()
	}
	return info
}

// List returns every registered game, smallest board first, then by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		if d := a.Rows*a.Cols - b.Rows*b.Cols; d != 0 {
			return d
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
