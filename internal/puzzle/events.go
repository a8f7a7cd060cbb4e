package puzzle

// Event is a notification emitted by a Session for its presentation layer.
type Event interface {
	sessionEvent()
}

// ScoreChangedEvent is emitted whenever the score changes.
type ScoreChangedEvent struct {
	Score int
}

func (ScoreChangedEvent) sessionEvent() {}

// PieceGeneratedEvent is emitted when a piece is dealt from the queue.
type PieceGeneratedEvent struct {
	Piece *Piece
}

func (PieceGeneratedEvent) sessionEvent() {}

// PlacedCorrectlyEvent is emitted when a piece locks.
type PlacedCorrectlyEvent struct {
	Piece *Piece
}

func (PlacedCorrectlyEvent) sessionEvent() {}

// PlacedIncorrectlyEvent is emitted when a placement attempt did not lock.
type PlacedIncorrectlyEvent struct{}

func (PlacedIncorrectlyEvent) sessionEvent() {}

// ThemeUnlockedEvent is emitted the first time a theme becomes available.
type ThemeUnlockedEvent struct {
	Theme Theme
}

func (ThemeUnlockedEvent) sessionEvent() {}

// PuzzleCompletedEvent is emitted once, when the last piece locks.
type PuzzleCompletedEvent struct{}

func (PuzzleCompletedEvent) sessionEvent() {}

// GameEndedEvent is emitted when the session leaves the active state.
type GameEndedEvent struct {
	Success    bool
	FinalScore int
}

func (GameEndedEvent) sessionEvent() {}
