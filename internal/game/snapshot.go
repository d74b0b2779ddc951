package game

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateWon         GameStateType = "won"
	StateLost        GameStateType = "lost"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Width          int
	Height         int
	Mines          int
	CursorX        int
	CursorY        int
	Generated      bool
	MinesRemaining int
	CellsRemaining int
	State          GameStateType
	Board          string // serialized grid, one row per line
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.board.Status()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case st.Exploded:
		state = StateLost
	case st.Won():
		state = StateWon
	}

	return Snapshot{
		Width:          g.width,
		Height:         g.height,
		Mines:          g.mines,
		CursorX:        g.cursorX,
		CursorY:        g.cursorY,
		Generated:      g.board.Generated(),
		MinesRemaining: st.MinesRemaining,
		CellsRemaining: st.CellsRemaining,
		State:          state,
		Board:          g.board.String(),
	}
}
