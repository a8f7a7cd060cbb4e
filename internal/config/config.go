// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// JigsawConfig contains all configuration for the jigsaw drop game.
type JigsawConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Fall       FallConfig       `yaml:"fall"`
	Play       PlayConfig       `yaml:"play"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the puzzle dimensions for the standard mode.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// FallConfig defines how fast pieces fall, in simulation ticks.
type FallConfig struct {
	TicksPerRow     int `yaml:"ticks_per_row"`     // Ticks between one-row steps at the easiest level
	MinTicksPerRow  int `yaml:"min_ticks_per_row"` // Fastest allowed fall
	SpawnDelayTicks int `yaml:"spawn_delay_ticks"` // Pause between a landing and the next piece
	MessageTicks    int `yaml:"message_ticks"`     // How long transient messages stay on screen
}

// PlayConfig defines pacing and HUD parameters.
type PlayConfig struct {
	PreviewCount   int  `yaml:"preview_count"`    // Upcoming pieces shown in the HUD
	PiecesPerLevel int  `yaml:"pieces_per_level"` // Level n ends after n*pieces_per_level landings
	MaxLevel       int  `yaml:"max_level"`
	ShowHints      bool `yaml:"show_hints"`
}

// SoundConfig defines audio output.
type SoundConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`       // 0.0 to 1.0
	Player      string  `yaml:"player"`       // Force a player binary; empty means detect
	Music       bool    `yaml:"music"`        // Background loop under the cues
	MusicVolume float64 `yaml:"music_volume"` // 0.0 to 1.0, independent of volume
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "pieces", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Pieces/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra fall speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func (c *JigsawConfig) ApplyPreset(preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		c.Difficulty.Enabled = false
	default:
		c.Difficulty.Enabled = true
		c.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Normalize clamps values into playable ranges.
func (c *JigsawConfig) Normalize() {
	c.Board.Rows = clampI(c.Board.Rows, 2, 10)
	c.Board.Cols = clampI(c.Board.Cols, 2, 10)
	c.Fall.TicksPerRow = max(c.Fall.TicksPerRow, 1)
	c.Fall.MinTicksPerRow = clampI(c.Fall.MinTicksPerRow, 1, c.Fall.TicksPerRow)
	c.Fall.SpawnDelayTicks = max(c.Fall.SpawnDelayTicks, 0)
	c.Fall.MessageTicks = max(c.Fall.MessageTicks, 1)
	c.Play.PreviewCount = clampI(c.Play.PreviewCount, 0, 5)
	c.Play.PiecesPerLevel = max(c.Play.PiecesPerLevel, 1)
	c.Play.MaxLevel = clampI(c.Play.MaxLevel, 1, 10)
	c.Sound.Volume = clampF(c.Sound.Volume, 0, 1)
	c.Sound.MusicVolume = clampF(c.Sound.MusicVolume, 0, 1)
	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
}

func clampI(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
