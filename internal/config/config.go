// Package config provides YAML-based configuration loading and validation
// for the minefield board parameters.
package config

import (
	"fmt"

	"github.com/dkhrunov/minefield/internal/board"
)

// Config is the full game configuration.
type Config struct {
	Board BoardConfig `yaml:"board"`
}

// BoardConfig defines the board dimensions and mine count.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Mines is the number of mines to place. Zero means "use the default":
	// one sixth of the cells, rounded down.
	Mines int `yaml:"mines"`
}

// ResolvedMines returns the effective mine count, substituting the default
// when no explicit count is configured.
func (b BoardConfig) ResolvedMines() int {
	if b.Mines <= 0 {
		return board.DefaultMines(b.Width, b.Height)
	}
	return b.Mines
}

// Validate rejects configurations the engine cannot play. Called at the CLI
// boundary before any board is allocated.
func (b BoardConfig) Validate() error {
	if b.Width <= 0 {
		return fmt.Errorf("config: board width must be positive, got %d", b.Width)
	}
	if b.Height <= 0 {
		return fmt.Errorf("config: board height must be positive, got %d", b.Height)
	}
	if b.Mines < 0 {
		return fmt.Errorf("config: mine count must not be negative, got %d", b.Mines)
	}
	if mines := b.ResolvedMines(); mines >= b.Width*b.Height {
		return fmt.Errorf("config: %d mines do not fit a %dx%d board (at most %d)",
			mines, b.Width, b.Height, b.Width*b.Height-1)
	}
	return nil
}
