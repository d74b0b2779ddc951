package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic mine layouts.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for mine placement; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState communicates the game's status to the platform after each action.
type GameState struct {
	MinesRemaining int  // Mines minus placed flags
	CellsRemaining int  // Safe cells still covered
	Won            bool // All safe cells uncovered, nothing exploded
	Lost           bool // A mine exploded
}

// Over reports whether the current round has ended either way.
func (s GameState) Over() bool {
	return s.Won || s.Lost
}
