package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkhrunov/minefield/internal/storage"
)

var flagResultsLimit int

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recent results and win rate",
	Long: `Display the most recent finished games and the overall win rate.

Examples:
  minefield results
  minefield results --limit 25`,
	Args: cobra.NoArgs,
	Run:  runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagResultsLimit, "limit", 10, "Number of recent results to show")
}

func runResults(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	results, err := store.RecentResults(flagResultsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 'minefield play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-10s  %-7s  %s\n", "Outcome", "Board", "Mines", "Date")
	fmt.Printf("  %-8s  %-10s  %-7s  %s\n", "-------", "-----", "-----", "----")

	for _, r := range results {
		board := fmt.Sprintf("%dx%d", r.Width, r.Height)
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-8s  %-10s  %-7d  %s\n", r.Outcome, board, r.Mines, dateStr)
	}

	stats, err := store.GetStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Total: %d games, %d won, %d lost (%.0f%% win rate)\n",
		stats.Games, stats.Wins, stats.Losses, stats.WinRate()*100)
}
