package puzzle

import (
	"errors"
	"math/rand"
)

// Scoring constants.
const (
	CorrectPoints    = 100
	IncorrectPenalty = 10
	CompletionBonus  = 1000
)

// State is the session lifecycle state.
type State uint8

const (
	StateIdle State = iota
	StateActive
	StateComplete
	StateAborted
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions are possible.
func (s State) Terminal() bool {
	return s == StateComplete || s == StateAborted
}

// Session owns the pieces of one puzzle, deals them in shuffled order,
// and keeps score. It is not safe for concurrent use; all calls are
// expected from a single game loop.
type Session struct {
	rng      *rand.Rand
	settings Settings
	grid     *Grid
	pieces   []*Piece

	queue  []*Piece
	cursor int

	current    *Piece
	score      int
	state      State
	generating bool

	events   []Event
	observer func(Event)
}

// NewSession generates the pieces for a rows x cols puzzle.
// Dimensions are clamped to [1, MaxSide]. A nil settings uses memory.
func NewSession(rows, cols int, rng *rand.Rand, settings Settings) *Session {
	rows = clampSide(rows)
	cols = clampSide(cols)
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	if settings == nil {
		settings = NewMemorySettings()
	}
	return &Session{
		rng:      rng,
		settings: settings,
		grid:     NewGrid(rows, cols),
		pieces:   NewPieceSet(rows, cols, rng),
	}
}

func clampSide(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxSide {
		return MaxSide
	}
	return n
}

// SetObserver registers a callback invoked synchronously for every event,
// in addition to the queue drained by Events.
func (s *Session) SetObserver(fn func(Event)) {
	s.observer = fn
}

// Events drains and returns the pending events in emission order.
func (s *Session) Events() []Event {
	ev := s.events
	s.events = nil
	return ev
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
	if s.observer != nil {
		s.observer(e)
	}
}

// Start shuffles every piece into the draw queue and deals the first one.
// It only works from the idle state.
func (s *Session) Start() (*Piece, bool) {
	if s.state != StateIdle {
		return nil, false
	}
	s.queue = make([]*Piece, len(s.pieces))
	copy(s.queue, s.pieces)
	s.rng.Shuffle(len(s.queue), func(i, j int) {
		s.queue[i], s.queue[j] = s.queue[j], s.queue[i]
	})
	s.cursor = 0
	s.state = StateActive
	return s.Next()
}

// Next deals the next queued piece with 0-3 random quarter turns applied.
// It does nothing when the session is not active, the queue is exhausted,
// or a deal is already in progress (an observer calling back into Next).
func (s *Session) Next() (*Piece, bool) {
	if s.generating || s.state != StateActive || s.cursor >= len(s.queue) {
		return nil, false
	}
	s.generating = true
	defer func() { s.generating = false }()

	p := s.queue[s.cursor]
	s.cursor++
	for i, n := 0, s.rng.Intn(4); i < n; i++ {
		p.Rotate()
	}
	s.current = p
	s.emit(PieceGeneratedEvent{Piece: p})
	return p, true
}

// Requeue takes an unlocked piece off the grid and appends it to the end
// of the draw queue with canonical orientation restored. Strays next to
// the freed cell are re-checked, since the removed edge may have been the
// only thing keeping them from locking.
func (s *Session) Requeue(p *Piece) bool {
	if s.state != StateActive || p == nil || p.Locked() {
		return false
	}
	for _, q := range s.queue[s.cursor:] {
		if q == p {
			return false
		}
	}
	row, col, onGrid := s.grid.PositionOf(p)
	s.grid.Remove(p)
	p.reset()
	if s.current == p {
		s.current = nil
	}
	s.queue = append(s.queue, p)
	if onGrid {
		s.settleAround(row, col)
	}
	return true
}

// settleAround re-evaluates the unlocked neighbours of (row, col) and
// scores each one that locks.
func (s *Session) settleAround(row, col int) {
	for _, d := range directions {
		dr, dc := d.Delta()
		n := s.grid.PieceAt(row+dr, col+dc)
		if n != nil && !n.Locked() && s.grid.Settle(n) {
			s.OnCorrectPlacement(n)
		}
	}
}

// Land drops p into (row, col) and scores the result.
func (s *Session) Land(p *Piece, row, col int) (bool, error) {
	if s.state != StateActive {
		return false, nil
	}
	locked, err := s.grid.Land(p, row, col)
	if err != nil {
		return false, err
	}
	s.scorePlacement(p, locked)
	return locked, nil
}

// Place attempts a strict placement and scores the result.
// Rejected placements count as incorrect, except for a piece that is
// already locked: that one is refused without a penalty.
func (s *Session) Place(p *Piece, row, col int) (bool, error) {
	if s.state != StateActive {
		return false, nil
	}
	locked, err := s.grid.Place(p, row, col)
	if err != nil {
		if !errors.Is(err, ErrLocked) {
			s.OnIncorrectPlacement()
		}
		return false, err
	}
	s.scorePlacement(p, locked)
	return locked, nil
}

// RotatePlaced rotates an unlocked piece already on the grid and
// re-evaluates it. It returns true if the rotation locked the piece.
func (s *Session) RotatePlaced(p *Piece) bool {
	if s.state != StateActive || !p.Rotate() {
		return false
	}
	if s.grid.Settle(p) {
		s.OnCorrectPlacement(p)
		return true
	}
	return false
}

func (s *Session) scorePlacement(p *Piece, locked bool) {
	if p == s.current {
		s.current = nil
	}
	if locked {
		s.OnCorrectPlacement(p)
	} else {
		s.OnIncorrectPlacement()
	}
}

// OnCorrectPlacement awards points, checks score unlocks and completion.
func (s *Session) OnCorrectPlacement(p *Piece) {
	if s.state != StateActive {
		return
	}
	s.setScore(s.score + CorrectPoints)
	if p != nil {
		s.emit(PlacedCorrectlyEvent{Piece: p})
	}
	for _, u := range ScoreUnlocks {
		if s.score >= u.Score {
			s.UnlockTheme(u.Theme)
		}
	}
	if s.allLocked() {
		s.state = StateComplete
		s.setScore(s.score + CompletionBonus)
		s.emit(PuzzleCompletedEvent{})
		s.emit(GameEndedEvent{Success: true, FinalScore: s.score})
	}
}

// OnIncorrectPlacement applies the penalty, never going below zero.
func (s *Session) OnIncorrectPlacement() {
	if s.state != StateActive {
		return
	}
	s.setScore(max(0, s.score-IncorrectPenalty))
	s.emit(PlacedIncorrectlyEvent{})
}

// Abort ends an active session as a failure.
func (s *Session) Abort() bool {
	if s.state != StateActive {
		return false
	}
	s.state = StateAborted
	s.current = nil
	s.emit(GameEndedEvent{Success: false, FinalScore: s.score})
	return true
}

// UnlockTheme marks a theme as unlocked, emitting an event the first time.
func (s *Session) UnlockTheme(t Theme) bool {
	if t.AlwaysUnlocked() || s.settings.ThemeUnlocked(t) {
		return false
	}
	s.settings.UnlockTheme(t)
	s.emit(ThemeUnlockedEvent{Theme: t})
	return true
}

func (s *Session) setScore(score int) {
	if score == s.score {
		return
	}
	s.score = score
	if score > s.settings.HighScore() {
		s.settings.SetHighScore(score)
	}
	s.emit(ScoreChangedEvent{Score: score})
}

func (s *Session) allLocked() bool {
	for _, p := range s.pieces {
		if !p.Locked() {
			return false
		}
	}
	return true
}

// Grid returns the board the session places pieces on.
func (s *Session) Grid() *Grid { return s.grid }

// Rows returns the puzzle height.
func (s *Session) Rows() int { return s.grid.Rows }

// Cols returns the puzzle width.
func (s *Session) Cols() int { return s.grid.Cols }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// HighScore returns the persisted best score.
func (s *Session) HighScore() int { return s.settings.HighScore() }

// Settings returns the settings collaborator.
func (s *Session) Settings() Settings { return s.settings }

// Current returns the most recently dealt piece that has not landed yet.
func (s *Session) Current() *Piece { return s.current }

// Remaining returns how many pieces are still queued.
func (s *Session) Remaining() int { return len(s.queue) - s.cursor }

// Dealt returns how many pieces have left the queue.
func (s *Session) Dealt() int { return s.cursor }

// Peek returns up to n upcoming pieces without dealing them.
func (s *Session) Peek(n int) []*Piece {
	if n <= 0 || s.cursor >= len(s.queue) {
		return nil
	}
	end := min(s.cursor+n, len(s.queue))
	out := make([]*Piece, end-s.cursor)
	copy(out, s.queue[s.cursor:end])
	return out
}

// Pieces returns every piece in row-major target order.
func (s *Session) Pieces() []*Piece {
	out := make([]*Piece, len(s.pieces))
	copy(out, s.pieces)
	return out
}

// PieceFor returns the piece whose target is (row, col).
func (s *Session) PieceFor(row, col int) *Piece {
	if !s.grid.InBounds(row, col) {
		return nil
	}
	return s.pieces[row*s.grid.Cols+col]
}

// LockedCount returns how many pieces are locked.
func (s *Session) LockedCount() int { return s.grid.Placed() }
