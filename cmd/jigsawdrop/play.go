package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/config"
	"github.com/vovakirdan/jigsaw-drop/internal/games/jigsaw"
	"github.com/vovakirdan/jigsaw-drop/internal/platform/tui"
	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/registry"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a puzzle",
	Long: `Start playing the specified mode (default: jigsaw).

Controls:
  Left/Right   - Move the falling piece
  Up/R         - Rotate clockwise
  Down         - Soft drop
  Space        - Hard drop
  Enter        - Set the piece in its current cell
  C            - Grid cursor: rotate (R) or pick up (X) misplaced pieces
  H            - Toggle hint
  P            - Pause
  R            - Restart (after game over)
  Esc          - Pause, or leave a paused game
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at the slowest fall speed, speeds up as you go
  normal - Start at 30% difficulty
  hard   - Start at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  jigsawdrop play
  jigsawdrop play jigsaw_mini --difficulty easy
  jigsawdrop play jigsaw_grand --theme ocean
  jigsawdrop play --config ./my-jigsaw.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Color theme (must be unlocked)")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := jigsaw.Standard.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'jigsawdrop list' to see available modes.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	logger, closeLog := newLogger()
	defer closeLog()

	// Set config path and difficulty before creation
	jigsaw.SetConfigPath(flagConfig)
	jigsaw.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	sounder, closeSound := newSounder(flagConfig, flagMute, store, logger)

	opts := tui.Options{
		Store:   store,
		Sounder: sounder,
		Logger:  logger,
		Theme:   pickTheme(store, flagTheme),
	}
	runErr := tui.Run(game, opts, runtimeConfig())

	if err := closeSound(); err != nil {
		logger.Warn("closing audio", "err", err)
	}
	closeStore(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// pickTheme resolves --theme against the unlocked themes. An empty or
// unavailable choice falls back to the stored theme.
func pickTheme(store *storage.Store, name string) puzzle.Theme {
	if store == nil {
		t := puzzle.Theme(name)
		if puzzle.Available(t, nil) {
			return t
		}
		return puzzle.ThemeClassic
	}
	if name == "" {
		return store.CurrentTheme()
	}
	if err := store.SetCurrentTheme(puzzle.Theme(name)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v; using %s\n", err, store.CurrentTheme())
	}
	return store.CurrentTheme()
}
