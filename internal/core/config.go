package core

// RuntimeConfig is what the platform tells a game when it starts or
// restarts it.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns available to the game
	ScreenH  int   // terminal rows available to the game
	TickRate int   // frames per second; fall speed is measured in frames
	Seed     int64 // shuffles the draw queue; 0 lets the platform choose
}

// DefaultConfig fits a standard 80x24 terminal at 30 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 30}
}

// GameState is the part of a game's status the platform acts on.
type GameState struct {
	Score    int
	GameOver bool // the run ended, either way
	Won      bool // the run ended with the puzzle assembled
	Paused   bool
}

// StepResult reports one frame: the resulting state plus the audio cues
// raised during it, in order.
type StepResult struct {
	State  GameState
	Sounds []Sound
}
