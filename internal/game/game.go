// Package game wires the board engine to a cursor and the platform's
// action/render contract. One action is fully processed per call; there is
// no simulation tick.
package game

import (
	"fmt"
	"math/rand"

	"github.com/dkhrunov/minefield/internal/board"
	"github.com/dkhrunov/minefield/internal/core"
)

const hudHeight = 2 // title line plus separator

// numberColors is the classic per-count color scheme for uncovered cells.
var numberColors = [9]core.Color{
	0: core.ColorDefault,
	1: core.ColorBlue,
	2: core.ColorGreen,
	3: core.ColorRed,
	4: core.ColorBlue,
	5: core.ColorMagenta,
	6: core.ColorCyan,
	7: core.ColorYellow,
	8: core.ColorRed,
}

// Game owns the board and the cursor and applies player actions to them.
type Game struct {
	width  int
	height int
	mines  int

	board   *board.Board
	cursorX int
	cursorY int
	rng     *rand.Rand

	// Screen layout
	screenW  int
	screenH  int
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a game for the given board dimensions and mine count.
// The board itself is allocated in Reset.
func New(width, height, mines int) *Game {
	return &Game{
		width:  width,
		height: height,
		mines:  mines,
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minefield"
}

// Reset initializes or restarts the game: fresh board, cursor at the
// origin, mine generation armed for the first reveal.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = board.New(g.width, g.height, g.mines, g.rng)
	g.cursorX = 0
	g.cursorY = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
}

// layout centers the grid and checks that the screen fits it. Each board
// cell takes two columns so the grid reads as "# # #" rather than "###".
func (g *Game) layout() {
	requiredW := g.width*2 + 1
	requiredH := g.height + hudHeight + 2
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false
	g.offsetX = (g.screenW - requiredW) / 2
	g.offsetY = hudHeight
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.layout()
}

// Cursor returns the current cursor position.
func (g *Game) Cursor() (int, int) {
	return g.cursorX, g.cursorY
}

// Board exposes the underlying board for inspection.
func (g *Game) Board() *board.Board {
	return g.board
}

// Apply processes one player action to completion. Movement clamps at the
// grid edges; reveal and flag act on the cell under the cursor; new-game
// resets the board and re-arms mine generation.
func (g *Game) Apply(a core.Action) {
	switch a {
	case core.ActionUp:
		g.cursorY = core.Clamp(g.cursorY-1, 0, g.height-1)
	case core.ActionDown:
		g.cursorY = core.Clamp(g.cursorY+1, 0, g.height-1)
	case core.ActionLeft:
		g.cursorX = core.Clamp(g.cursorX-1, 0, g.width-1)
	case core.ActionRight:
		g.cursorX = core.Clamp(g.cursorX+1, 0, g.width-1)
	case core.ActionReveal:
		if !g.roundOver() {
			g.board.Reveal(g.cursorX, g.cursorY)
		}
	case core.ActionFlag:
		if !g.roundOver() {
			g.board.Flag(g.cursorX, g.cursorY)
		}
	case core.ActionNewGame:
		g.board.Reset()
		g.cursorX = 0
		g.cursorY = 0
	}
}

// roundOver reports whether the round has ended. A finished board only
// accepts new-game; reveals and flags are ignored.
func (g *Game) roundOver() bool {
	st := g.board.Status()
	return st.Exploded || st.Won()
}

// State returns the platform-facing game status, derived fresh from the
// board scan.
func (g *Game) State() core.GameState {
	st := g.board.Status()
	return core.GameState{
		MinesRemaining: st.MinesRemaining,
		CellsRemaining: st.CellsRemaining,
		Won:            st.Won(),
		Lost:           st.Exploded,
	}
}

// Render draws the board, cursor, HUD, and status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue")
		return
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, color := g.cellGlyph(x, y)
			dst.SetColored(g.offsetX+x*2+1, g.offsetY+y, r, color)
		}
	}

	// Cursor brackets around the selected cell
	dst.SetColored(g.offsetX+g.cursorX*2, g.offsetY+g.cursorY, '[', core.ColorBrightWhite)
	dst.SetColored(g.offsetX+g.cursorX*2+2, g.offsetY+g.cursorY, ']', core.ColorBrightWhite)

	g.renderStatus(dst)
}

// cellGlyph maps a cell view to its glyph and color. Mines are only ever
// drawn for the exploded cell; covered and flagged cells reveal nothing.
func (g *Game) cellGlyph(x, y int) (rune, core.Color) {
	v := g.board.View(x, y)
	switch v.State {
	case board.Covered:
		return '#', core.ColorGray
	case board.Flagged:
		return 'F', core.ColorBrightRed
	case board.Exploded:
		return '*', core.ColorExploded
	default:
		if v.Neighbors == 0 {
			return ' ', core.ColorDefault
		}
		return rune('0' + v.Neighbors), numberColors[v.Neighbors]
	}
}

// renderHUD draws the top title bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Minefield  %dx%d, %d mines", g.width, g.height, g.mines)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderStatus draws the line below the grid: the unflagged-mine counter
// during play, the verdict once the round ends.
func (g *Game) renderStatus(dst *core.Screen) {
	st := g.board.Status()
	y := g.offsetY + g.height + 1

	switch {
	case st.Exploded:
		dst.DrawText(g.offsetX, y, "Game Over - press n for a new game")
	case st.Won():
		dst.DrawText(g.offsetX, y, "You Win! - press n for a new game")
	default:
		dst.DrawText(g.offsetX, y, fmt.Sprintf("Mines: %d", st.MinesRemaining))
	}
}
