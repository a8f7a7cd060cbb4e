package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List color themes and how to unlock them",
	Long: `Shows every color theme, whether it is unlocked, and the score or
level that unlocks it. Select a theme with 'jigsawdrop play --theme <name>'
or from the menu.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	settings := store.Settings("")
	current := store.CurrentTheme()

	fmt.Printf("  %-12s  %-8s  %s\n", "Theme", "Status", "Unlock")
	fmt.Printf("  %-12s  %-8s  %s\n", "-----", "------", "------")
	for _, t := range puzzle.Themes {
		status := "locked"
		if puzzle.Available(t, settings) {
			status = "unlocked"
		}
		marker := " "
		if t == current {
			marker = "*"
		}
		fmt.Printf("%s %-12s  %-8s  %s\n", marker, t.Name(), status, unlockCondition(t))
	}
	fmt.Println()
	fmt.Println("* current theme")
}

// unlockCondition describes what unlocks t.
func unlockCondition(t puzzle.Theme) string {
	if t.AlwaysUnlocked() {
		return "always available"
	}
	var conds []string
	for _, u := range puzzle.ScoreUnlocks {
		if u.Theme == t {
			conds = append(conds, fmt.Sprintf("score %d", u.Score))
		}
	}
	for level := 1; level <= 10; level++ {
		if lt, ok := puzzle.LevelUnlock(level); ok && lt == t {
			conds = append(conds, fmt.Sprintf("reach level %d", level))
		}
	}
	switch len(conds) {
	case 0:
		return "-"
	case 1:
		return conds[0]
	default:
		return conds[0] + " or " + conds[1]
	}
}
