package puzzle

import (
	"errors"
	"math/rand"
	"testing"
)

func newTestSession(rows, cols int, seed int64) (*Session, *MemorySettings) {
	settings := NewMemorySettings()
	return NewSession(rows, cols, rand.New(rand.NewSource(seed)), settings), settings
}

func solve(t *testing.T, s *Session, p *Piece, ok bool) {
	t.Helper()
	for ok {
		for p.Orientation() != North {
			p.Rotate()
		}
		locked, err := s.Land(p, p.Row(), p.Col())
		if err != nil || !locked {
			t.Fatalf("Land(%s) = %v, %v; want locked", p.ID(), locked, err)
		}
		p, ok = s.Next()
	}
}

func TestSessionLifecycle(t *testing.T) {
	s, _ := newTestSession(3, 3, 1)
	if s.State() != StateIdle {
		t.Fatalf("State() = %v, want idle", s.State())
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() before Start() should be a no-op")
	}

	p, ok := s.Start()
	if !ok || p == nil {
		t.Fatal("Start() did not deal a piece")
	}
	if s.State() != StateActive {
		t.Errorf("State() = %v, want active", s.State())
	}
	if _, ok := s.Start(); ok {
		t.Error("second Start() should be rejected")
	}

	if !s.Abort() {
		t.Fatal("Abort() = false on active session")
	}
	if s.State() != StateAborted {
		t.Errorf("State() = %v, want aborted", s.State())
	}
	if _, ok := s.Start(); ok {
		t.Error("Start() after abort must not reactivate the session")
	}
	if _, ok := s.Next(); ok {
		t.Error("Next() after abort should be a no-op")
	}
}

func TestStartDealsEveryPieceOnce(t *testing.T) {
	s, _ := newTestSession(4, 4, 9)
	seen := make(map[string]bool)
	p, ok := s.Start()
	for ok {
		if seen[p.ID()] {
			t.Fatalf("piece %s dealt twice", p.ID())
		}
		seen[p.ID()] = true
		p, ok = s.Next()
	}
	if len(seen) != 16 {
		t.Errorf("dealt %d pieces, want 16", len(seen))
	}
}

func TestExhaustedQueueIsNoop(t *testing.T) {
	s, _ := newTestSession(2, 2, 5)
	_, ok := s.Start()
	for ok {
		_, ok = s.Next()
	}
	s.Events()

	score, dealt := s.Score(), s.Dealt()
	p, ok := s.Next()
	if ok || p != nil {
		t.Errorf("Next() = %v, %v after exhaustion, want nil, false", p, ok)
	}
	if s.Score() != score || s.Dealt() != dealt || s.Remaining() != 0 {
		t.Error("Next() after exhaustion changed session state")
	}
	if s.State() != StateActive {
		t.Errorf("State() = %v, want active", s.State())
	}
	if ev := s.Events(); len(ev) != 0 {
		t.Errorf("Next() after exhaustion emitted %d events", len(ev))
	}
}

func TestScoreDeltas(t *testing.T) {
	s, settings := newTestSession(10, 10, 2)
	s.Start()

	s.OnIncorrectPlacement()
	if s.Score() != 0 {
		t.Errorf("score after penalty at zero = %d, want 0", s.Score())
	}

	s.OnCorrectPlacement(nil)
	s.OnCorrectPlacement(nil)
	if s.Score() != 200 {
		t.Errorf("score = %d, want 200", s.Score())
	}

	s.OnIncorrectPlacement()
	if s.Score() != 190 {
		t.Errorf("score = %d, want 190", s.Score())
	}
	if settings.HighScore() != 200 {
		t.Errorf("HighScore() = %d, want 200", settings.HighScore())
	}
}

func TestScoreUnlocksThemes(t *testing.T) {
	s, settings := newTestSession(10, 10, 2)
	s.Start()
	s.Events()

	for i := 0; i < 10; i++ {
		s.OnCorrectPlacement(nil)
	}
	if !settings.ThemeUnlocked(ThemeOcean) {
		t.Error("ocean should unlock at 1000 points")
	}
	if settings.ThemeUnlocked(ThemeForest) {
		t.Error("forest should still be locked")
	}

	unlocks := 0
	for _, e := range s.Events() {
		if _, ok := e.(ThemeUnlockedEvent); ok {
			unlocks++
		}
	}
	s.OnCorrectPlacement(nil)
	for _, e := range s.Events() {
		if _, ok := e.(ThemeUnlockedEvent); ok {
			unlocks++
		}
	}
	if unlocks != 1 {
		t.Errorf("ThemeUnlockedEvent emitted %d times, want 1", unlocks)
	}
}

func TestPuzzleCompletesExactlyOnce(t *testing.T) {
	const n = 3
	s, settings := newTestSession(n, n, 11)
	completions, endings := 0, 0
	s.SetObserver(func(e Event) {
		switch ev := e.(type) {
		case PuzzleCompletedEvent:
			completions++
		case GameEndedEvent:
			endings++
			if !ev.Success {
				t.Error("GameEndedEvent.Success = false on completion")
			}
		}
	})

	p, ok := s.Start()
	solve(t, s, p, ok)

	if s.State() != StateComplete {
		t.Fatalf("State() = %v, want complete", s.State())
	}
	want := n*n*CorrectPoints + CompletionBonus
	if s.Score() != want {
		t.Errorf("Score() = %d, want %d", s.Score(), want)
	}
	if settings.HighScore() != want {
		t.Errorf("HighScore() = %d, want %d", settings.HighScore(), want)
	}

	s.OnCorrectPlacement(nil)
	s.Abort()
	if completions != 1 || endings != 1 {
		t.Errorf("completions=%d endings=%d, want 1 and 1", completions, endings)
	}
	if s.Score() != want {
		t.Error("score changed after completion")
	}
}

func TestObserverCannotReenterNext(t *testing.T) {
	s, _ := newTestSession(3, 3, 4)
	s.SetObserver(func(e Event) {
		if _, ok := e.(PieceGeneratedEvent); ok {
			s.Next()
		}
	})
	s.Start()
	if s.Dealt() != 1 {
		t.Errorf("Dealt() = %d, want 1", s.Dealt())
	}
	s.Next()
	if s.Dealt() != 2 {
		t.Errorf("Dealt() = %d, want 2", s.Dealt())
	}
}

func TestRequeueStray(t *testing.T) {
	s, _ := newTestSession(3, 3, 8)
	p, _ := s.Start()
	remaining := s.Remaining()

	row, col := (p.Row()+1)%3, p.Col()
	locked, err := s.Land(p, row, col)
	if err != nil || locked {
		t.Fatalf("Land() = %v, %v; want stray", locked, err)
	}

	if !s.Requeue(p) {
		t.Fatal("Requeue() = false for a stray")
	}
	if s.Grid().PieceAt(row, col) != nil {
		t.Error("requeued piece still on the grid")
	}
	if s.Remaining() != remaining+1 {
		t.Errorf("Remaining() = %d, want %d", s.Remaining(), remaining+1)
	}
	if s.Requeue(p) {
		t.Error("a queued piece must not be queued twice")
	}
	if peek := s.Peek(s.Remaining()); peek[len(peek)-1] != p {
		t.Error("requeued piece should be last in the queue")
	}
}

func TestRotatePlacedLocks(t *testing.T) {
	s, _ := newTestSession(1, 1, 3)
	p, _ := s.Start()
	for p.Orientation() != East {
		p.Rotate()
	}
	if locked, _ := s.Land(p, 0, 0); locked {
		t.Fatal("east-facing piece should not lock")
	}
	if s.Score() != 0 {
		t.Errorf("Score() = %d, want 0", s.Score())
	}
	for i := 0; i < 2; i++ {
		if s.RotatePlaced(p) {
			t.Fatalf("RotatePlaced() locked at %v", p.Orientation())
		}
	}
	if !s.RotatePlaced(p) {
		t.Fatal("RotatePlaced() to north should lock")
	}
	if s.State() != StateComplete {
		t.Errorf("State() = %v, want complete", s.State())
	}
	if want := CorrectPoints + CompletionBonus; s.Score() != want {
		t.Errorf("Score() = %d, want %d", s.Score(), want)
	}
}

func TestLockedPieceCannotMoveOrRescore(t *testing.T) {
	s, _ := newTestSession(2, 2, 5)
	p, _ := s.Start()
	for p.Orientation() != North {
		p.Rotate()
	}
	if locked, err := s.Land(p, p.Row(), p.Col()); err != nil || !locked {
		t.Fatalf("Land() = %v, %v; want locked", locked, err)
	}
	if s.Score() != CorrectPoints {
		t.Fatalf("Score() = %d, want %d", s.Score(), CorrectPoints)
	}

	otherRow := (p.Row() + 1) % 2
	tests := []struct {
		name string
		move func() (bool, error)
	}{
		{"land same cell", func() (bool, error) { return s.Land(p, p.Row(), p.Col()) }},
		{"place same cell", func() (bool, error) { return s.Place(p, p.Row(), p.Col()) }},
		{"land other cell", func() (bool, error) { return s.Land(p, otherRow, p.Col()) }},
	}
	for _, tt := range tests {
		locked, err := tt.move()
		if locked || !errors.Is(err, ErrLocked) {
			t.Errorf("%s: got %v, %v; want ErrLocked", tt.name, locked, err)
		}
		if s.Score() != CorrectPoints {
			t.Errorf("%s: Score() = %d, want %d", tt.name, s.Score(), CorrectPoints)
		}
		if s.Grid().Placed() != 1 || !p.Locked() {
			t.Errorf("%s: Placed() = %d, Locked() = %v", tt.name, s.Grid().Placed(), p.Locked())
		}
		if s.Grid().PieceAt(p.Row(), p.Col()) != p {
			t.Errorf("%s: locked piece left its cell", tt.name)
		}
	}
	if s.Grid().PieceAt(otherRow, p.Col()) != nil {
		t.Error("locked piece was copied into another cell")
	}
}

func TestRequeueSettlesBlockedNeighbour(t *testing.T) {
	s, _ := newTestSession(1, 2, 6)
	s.Start()
	s.Next()
	left, right := s.PieceFor(0, 0), s.PieceFor(0, 1)

	// East-facing, the right piece shows a flat edge to the left piece's
	// tab or blank, so the correctly oriented left piece cannot lock.
	for right.Orientation() != East {
		right.Rotate()
	}
	if locked, err := s.Land(right, 0, 1); err != nil || locked {
		t.Fatalf("Land(right) = %v, %v; want stray", locked, err)
	}
	for left.Orientation() != North {
		left.Rotate()
	}
	if locked, err := s.Land(left, 0, 0); err != nil || locked {
		t.Fatalf("Land(left) = %v, %v; want stray", locked, err)
	}

	if !s.Requeue(right) {
		t.Fatal("Requeue(right) = false")
	}
	if !left.Locked() {
		t.Error("left piece should lock once its blocking neighbour is gone")
	}
	if s.Grid().Placed() != 1 {
		t.Errorf("Placed() = %d, want 1", s.Grid().Placed())
	}
	if s.Score() != CorrectPoints {
		t.Errorf("Score() = %d, want %d", s.Score(), CorrectPoints)
	}
	if s.State() != StateActive {
		t.Errorf("State() = %v, want active", s.State())
	}
}
