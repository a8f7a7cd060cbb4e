// jigsawdrop is a terminal jigsaw puzzle where pieces fall Tetris-style and
// must be rotated into their own cell.
//
// Usage:
//
//	jigsawdrop list              - List available puzzle modes
//	jigsawdrop play [mode]       - Play a mode (default: jigsaw)
//	jigsawdrop menu              - Start menu to pick a mode interactively
//	jigsawdrop serve             - Start SSH server for remote play
//	jigsawdrop scores <mode>     - Show high scores for a mode
//	jigsawdrop themes            - Show themes and how to unlock them
//	jigsawdrop stats             - Show lifetime statistics
//	jigsawdrop sound [music] [on|off] - Show or toggle sound and music
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.jigsawdrop/scores.db)
//	--log <path>    - Write a debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/jigsaw-drop/internal/games/jigsaw"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagVerbose bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jigsawdrop",
	Short: "Jigsaw Drop - a falling-piece jigsaw puzzle for your terminal",
	Long: `Jigsaw Drop deals the pieces of a picture one at a time. Each piece
falls from the top; rotate it and steer it into the cell it belongs to.
Correct placements lock in place and score, wrong ones stay on the board
until you fix them.

Available commands:
  list     - Show all puzzle modes
  play     - Play a mode directly
  menu     - Interactive mode, theme and difficulty picker
  serve    - Start SSH server for remote play
  scores   - View or reset high scores
  themes   - List themes and unlock conditions
  stats    - Lifetime statistics
  sound    - Show or toggle sound and background music

Examples:
  jigsawdrop play
  jigsawdrop play jigsaw_mini --difficulty easy
  jigsawdrop menu
  jigsawdrop serve --ssh :2222
  jigsawdrop scores jigsaw`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultDBPath(), "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write a log to this file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Include debug messages in the log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(soundCmd)
}
