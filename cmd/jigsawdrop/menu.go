package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/games/jigsaw"
	"github.com/vovakirdan/jigsaw-drop/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the mode, theme and difficulty picker",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Left/Right change the theme and difficulty rows. Tab opens the scoreboard.
Leaving a finished or paused game returns to the menu.

Examples:
  jigsawdrop menu
  jigsawdrop menu --mute
  jigsawdrop menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --log)
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger()
	defer closeLog()

	jigsaw.SetConfigPath(flagConfig)

	store := openStore(logger)
	sounder, closeSound := newSounder(flagConfig, flagMute, store, logger)

	opts := tui.Options{
		Store:   store,
		Sounder: sounder,
		Logger:  logger,
	}
	runErr := tui.RunSession(opts, runtimeConfig())

	if err := closeSound(); err != nil {
		logger.Warn("closing audio", "err", err)
	}
	closeStore(store, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
