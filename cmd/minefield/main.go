// minefield is a terminal minesweeper played with the keyboard.
//
// Usage:
//
//	minefield play              - Play in the current terminal
//	minefield serve             - Start SSH server for remote play
//	minefield results           - Show recent results and win rate
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible mine layouts
//	--db <path>     - Set database path (default: ~/.minefield/results.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Minefield - Minesweeper in your terminal",
	Long: `Minefield is a keyboard-driven minesweeper for the terminal.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  results  - View recent results and win rate

Examples:
  minefield play
  minefield play --width 30 --height 16 --mines 99
  minefield serve --ssh :2222
  minefield results`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minefield/results.db", "Path to results database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(resultsCmd)
}
