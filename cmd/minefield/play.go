package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dkhrunov/minefield/internal/config"
	"github.com/dkhrunov/minefield/internal/core"
	"github.com/dkhrunov/minefield/internal/game"
	"github.com/dkhrunov/minefield/internal/platform/tui"
	"github.com/dkhrunov/minefield/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagMines  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Arrows/hjkl/wasd - Move the cursor
  Space/Z/Enter    - Reveal the cell under the cursor
  F/X              - Flag or unflag the cell
  N                - New game
  Q/Ctrl+C         - Quit

Revealing an already-revealed number whose neighbors are fully flagged
reveals the remaining neighbors at once (chord).

Board size and mine count come from the config file unless overridden
with flags. With --mines 0 the count defaults to one sixth of the cells.

Examples:
  minefield play
  minefield play --width 9 --height 9 --mines 10
  minefield play --config ./my-board.yaml
  minefield play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height in cells (0 = from config)")
	playCmd.Flags().IntVar(&flagMines, "mines", -1, "Mine count (-1 = from config, 0 = default density)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load board config, then apply flag overrides
	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	bc := fileCfg.Board
	if flagWidth > 0 {
		bc.Width = flagWidth
	}
	if flagHeight > 0 {
		bc.Height = flagHeight
	}
	if flagMines >= 0 {
		bc.Mines = flagMines
	}

	// Validate before allocating the board
	if err := bc.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	g := game.New(bc.Width, bc.Height, bc.ResolvedMines())

	// Open result storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(g, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
