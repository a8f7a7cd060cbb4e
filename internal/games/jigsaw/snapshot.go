package jigsaw

import "github.com/vovakirdan/jigsaw-drop/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSpawning    GameStateType = "spawning"
	StateCursor      GameStateType = "cursor"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Score       int
	Level       int
	Landed      int
	Locked      int
	Occupied    int // locked pieces plus strays
	Remaining   int
	Streak      int
	FallingID   string // Empty between pieces
	FallRow     int
	FallCol     int
	Orientation puzzle.Orientation
	TicksPerRow int
	Session     puzzle.State
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	case g.cursorMode:
		state = StateCursor
	case g.falling == nil:
		state = StateSpawning
	}

	snap := Snapshot{
		Tick:        g.tick,
		Score:       g.session.Score(),
		Level:       g.level,
		Landed:      g.landed,
		Locked:      g.session.LockedCount(),
		Occupied:    g.session.Grid().Occupied(),
		Remaining:   g.session.Remaining(),
		Streak:      g.streak,
		TicksPerRow: g.ticksPerRow(),
		Session:     g.session.State(),
		State:       state,
	}
	if g.falling != nil {
		snap.FallingID = g.falling.ID()
		snap.FallRow = g.fallRow
		snap.FallCol = g.fallCol
		snap.Orientation = g.falling.Orientation()
	}
	return snap
}
