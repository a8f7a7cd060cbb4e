package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jigsaw-drop/internal/registry"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

var flagRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show lifetime statistics and recent runs",
	Args:  cobra.NoArgs,
	Run:   runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to list")
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	play, err := store.PlayStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Lifetime")
	for _, row := range [][2]string{
		{"Games played", fmt.Sprint(play.GamesPlayed)},
		{"Puzzles solved", fmt.Sprint(play.GamesWon)},
		{"Pieces locked", fmt.Sprint(play.PiecesLocked)},
		{"Best level", fmt.Sprint(play.BestLevel)},
		{"Time played", play.PlayTime.Round(time.Second).String()},
	} {
		fmt.Printf("  %-15s %s\n", row[0]+":", row[1])
	}
	fmt.Println()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Per mode")
	for _, g := range registry.List() {
		gs, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-22s  not played yet\n", g.Title)
			continue
		}
		fmt.Printf("  %-22s  games %-4d best %-6d avg %.0f\n", g.Title, gs.GamesCount, gs.HighScore, gs.AvgScore)
	}

	if flagRecent <= 0 {
		return
	}
	runs, err := store.RecentRuns("", flagRecent)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if len(runs) == 0 {
		return
	}
	fmt.Println()
	fmt.Println("Recent runs")
	for _, r := range runs {
		result := "overflow"
		if r.Success {
			result = "solved"
		}
		fmt.Printf("  %s  %-13s  %-8s  score %-6d  %d/%d pieces  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.GameID, result, r.Score,
			r.PiecesLocked, r.PiecesTotal, r.Duration.Round(time.Second))
	}
}
