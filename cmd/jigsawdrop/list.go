package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all puzzle modes",
	Long:  `Shows a list of all registered puzzle modes.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	row := func(id, title, size, desc string) {
		fmt.Printf("  %-*s  %-*s  %-5s  %s\n", idW, id, titleW, title, size, desc)
	}
	row("ID", "Title", "Board", "Description")
	row("--", "-----", "-----", "-----------")
	for _, g := range games {
		size := "-"
		if g.Rows > 0 {
			size = fmt.Sprintf("%dx%d", g.Rows, g.Cols)
		}
		row(g.ID, g.Title, size, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'jigsawdrop play <id>' to play a mode.")
}
