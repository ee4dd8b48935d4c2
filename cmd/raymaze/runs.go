package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/raymaze/internal/registry"
	"github.com/vovakirdan/raymaze/internal/storage"
)

var runsCmd = &cobra.Command{
	Use:   "runs <mode>",
	Short: "Show best runs for a mode",
	Long: `Display the top 10 runs for the specified mode, completed runs
first, fewest moves winning among them.

Examples:
  raymaze runs race
  raymaze runs explore`,
	Args: cobra.ExactArgs(1),
	Run:  runRuns,
}

func runRuns(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'raymaze list' to see available modes.")
		os.Exit(1)
	}

	// Get mode title
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.BestRuns(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	// Display runs
	fmt.Printf("Best Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'raymaze play %s' to record the first run!\n", modeID)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-5s  %s\n", "Rank", "Moves", "Maze", "Done", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-5s  %s\n", "----", "-----", "----", "----", "----")

	// Print runs
	for i, entry := range runs {
		done := "no"
		if entry.Completed {
			done = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-9s  %-5s  %s\n",
			i+1, entry.Moves, fmt.Sprintf("%dx%d", entry.MapWidth, entry.MapHeight), done, dateStr)
	}

	// Show aggregate stats
	fmt.Println()
	if stats, err := store.GetRunStats(modeID); err == nil && stats.RunCount > 0 {
		fmt.Printf("Completed runs: %d  Best: %d moves  Avg: %.1f moves\n",
			stats.RunCount, stats.BestMoves, stats.AvgMoves)
	}
}
