package game

import (
	"strings"
	"testing"

	"github.com/dkhrunov/minefield/internal/board"
	"github.com/dkhrunov/minefield/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    seed,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and action sequence must end up in
	// identical states.
	actions := []core.Action{
		core.ActionRight, core.ActionRight, core.ActionDown,
		core.ActionReveal,
		core.ActionLeft, core.ActionFlag,
		core.ActionDown, core.ActionDown, core.ActionReveal,
	}

	run := func() Snapshot {
		g := New(10, 10, 15)
		g.Reset(testConfig(12345))
		for _, a := range actions {
			g.Apply(a)
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()

	if snap1 != snap2 {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
}

func TestCursorClamping(t *testing.T) {
	g := New(3, 2, 1)
	g.Reset(testConfig(1))

	// Push past every edge; the cursor must stay on the grid.
	for i := 0; i < 5; i++ {
		g.Apply(core.ActionUp)
		g.Apply(core.ActionLeft)
	}
	if x, y := g.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor at (%d, %d) after pushing top-left, want (0, 0)", x, y)
	}

	for i := 0; i < 5; i++ {
		g.Apply(core.ActionDown)
		g.Apply(core.ActionRight)
	}
	if x, y := g.Cursor(); x != 2 || y != 1 {
		t.Errorf("cursor at (%d, %d) after pushing bottom-right, want (2, 1)", x, y)
	}
}

func TestRevealActsAtCursor(t *testing.T) {
	g := New(5, 5, 3)
	g.Reset(testConfig(7))

	g.Apply(core.ActionRight)
	g.Apply(core.ActionDown)
	g.Apply(core.ActionReveal)

	if got := g.Board().CellAt(1, 1).State; got != board.Uncovered {
		t.Errorf("cell under cursor is %v, want uncovered", got)
	}
	if g.Board().CellAt(1, 1).Mine {
		t.Error("first reveal hit a mine")
	}
}

func TestFlagActsAtCursor(t *testing.T) {
	g := New(5, 5, 3)
	g.Reset(testConfig(7))

	g.Apply(core.ActionFlag)
	if got := g.State().MinesRemaining; got != 2 {
		t.Errorf("mines remaining = %d after one flag, want 2", got)
	}

	g.Apply(core.ActionFlag)
	if got := g.State().MinesRemaining; got != 3 {
		t.Errorf("mines remaining = %d after unflag, want 3", got)
	}
}

func TestNewGameResets(t *testing.T) {
	g := New(6, 6, 5)
	g.Reset(testConfig(3))

	g.Apply(core.ActionReveal)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionFlag)

	g.Apply(core.ActionNewGame)

	snap := g.Snapshot()
	if snap.Generated {
		t.Error("new game should re-arm mine generation")
	}
	if snap.CursorX != 0 || snap.CursorY != 0 {
		t.Errorf("cursor at (%d, %d) after new game, want origin", snap.CursorX, snap.CursorY)
	}
	if strings.ContainsAny(snap.Board, "F.*12345678") {
		t.Errorf("board not fully covered after new game:\n%s", snap.Board)
	}
	if snap.State != StatePlaying {
		t.Errorf("state %q after new game, want playing", snap.State)
	}
}

func TestWinState(t *testing.T) {
	g := New(1, 1, 0)
	g.Reset(testConfig(1))

	g.Apply(core.ActionReveal)

	state := g.State()
	if !state.Won || state.Lost {
		t.Errorf("state = %+v after clearing a mineless board, want won", state)
	}
	if snap := g.Snapshot(); snap.State != StateWon {
		t.Errorf("snapshot state %q, want won", snap.State)
	}
}

func TestLossState(t *testing.T) {
	// Saturated board: after the safe first reveal every other cell is a
	// mine, so a second reveal must lose.
	g := New(3, 3, 8)
	g.Reset(testConfig(5))

	g.Apply(core.ActionReveal)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionReveal)

	state := g.State()
	if !state.Lost || state.Won {
		t.Errorf("state = %+v after revealing a mine, want lost", state)
	}
	if snap := g.Snapshot(); snap.State != StateLost {
		t.Errorf("snapshot state %q, want lost", snap.State)
	}
}

func TestInputIgnoredAfterLoss(t *testing.T) {
	g := New(3, 3, 8)
	g.Reset(testConfig(5))

	g.Apply(core.ActionReveal)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionReveal)

	snap := g.Snapshot()
	g.Apply(core.ActionDown)
	g.Apply(core.ActionReveal)
	g.Apply(core.ActionFlag)

	after := g.Snapshot()
	if snap.Board != after.Board {
		t.Errorf("board changed after the round ended:\nbefore:\n%s\nafter:\n%s", snap.Board, after.Board)
	}

	// New game still works.
	g.Apply(core.ActionNewGame)
	if g.Snapshot().State != StatePlaying {
		t.Error("new game should restart after a loss")
	}
}

func TestRenderCoveredBoard(t *testing.T) {
	g := New(4, 4, 2)
	g.Reset(testConfig(9))

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Minefield") {
		t.Error("HUD missing from rendered screen")
	}
	if !strings.Contains(content, "#") {
		t.Error("covered cells missing from rendered screen")
	}
	if !strings.Contains(content, "[") || !strings.Contains(content, "]") {
		t.Error("cursor brackets missing from rendered screen")
	}
	if !strings.Contains(content, "Mines: 2") {
		t.Error("status line missing from rendered screen")
	}
	if strings.Contains(content, "*") {
		t.Error("no cell may render as a mine before anything exploded")
	}
}

func TestRenderNeverLeaksMines(t *testing.T) {
	g := New(6, 6, 10)
	g.Reset(testConfig(11))
	g.Apply(core.ActionReveal)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// Mines exist on the board now, but none exploded: the render must not
	// show any.
	if strings.Contains(screen.String(), "*") {
		t.Error("render leaked a mine on a live board")
	}
}

func TestRenderExplosion(t *testing.T) {
	g := New(3, 3, 8)
	g.Reset(testConfig(5))
	g.Apply(core.ActionReveal)
	g.Apply(core.ActionRight)
	g.Apply(core.ActionReveal)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "*") {
		t.Error("exploded mine missing from rendered screen")
	}
	if !strings.Contains(content, "Game Over") {
		t.Error("loss banner missing from rendered screen")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(20, 20, 66)
	g.Reset(core.RuntimeConfig{ScreenW: 10, ScreenH: 5, Seed: 1})

	if snap := g.Snapshot(); snap.State != StatePausedSmall {
		t.Errorf("state %q on a tiny screen, want paused_small_window", snap.State)
	}

	// Growing the window recovers without resetting the board.
	g.Resize(80, 30)
	if snap := g.Snapshot(); snap.State != StatePlaying {
		t.Errorf("state %q after resize, want playing", snap.State)
	}
}
