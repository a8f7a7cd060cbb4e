package config

import (
	_ "embed"
)

//go:embed defaults/jigsaw.yaml
var defaultJigsawYAML []byte

// DefaultJigsawConfig returns the hard-coded default configuration.
// It matches defaults/jigsaw.yaml.
func DefaultJigsawConfig() JigsawConfig {
	return JigsawConfig{
		Board: BoardConfig{
			Rows: 6,
			Cols: 6,
		},
		Fall: FallConfig{
			TicksPerRow:     30,
			MinTicksPerRow:  6,
			SpawnDelayTicks: 9,
			MessageTicks:    45,
		},
		Play: PlayConfig{
			PreviewCount:   3,
			PiecesPerLevel: 10,
			MaxLevel:       10,
			ShowHints:      true,
		},
		Sound: SoundConfig{
			Enabled:     true,
			Volume:      0.5,
			Music:       true,
			MusicVolume: 0.3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "pieces",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jigsaw", "jigsaw_mini", "jigsaw_grand":
		return defaultJigsawYAML
	default:
		return nil
	}
}
