package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkhrunov/minefield/internal/core"
	"github.com/dkhrunov/minefield/internal/game"
	"github.com/dkhrunov/minefield/internal/storage"
)

// Model is the Bubble Tea model for a game session. The engine is purely
// event-driven: each key press maps to one action, the board mutates, and
// the next View call re-renders. There is no tick loop.
type Model struct {
	game        *game.Game
	screen      *core.Screen
	store       *storage.Store
	config      core.RuntimeConfig
	keys        KeyMap
	help        help.Model
	gameState   core.GameState
	quitting    bool
	resultSaved bool // Whether the outcome has been recorded for the current round
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	m := Model{
		game:   g,
		screen: core.NewScreen(cfg.ScreenW, screenHeight(cfg.ScreenH)),
		store:  store,
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.gameState = g.State()
	return m
}

// screenHeight reserves the bottom terminal row for the help line.
func screenHeight(h int) int {
	return core.Max(h-1, 1)
}

// Init implements tea.Model. All state is prepared in NewModel.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.ActionFor(msg)
	if action == core.ActionNone {
		return m, nil
	}
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionNewGame {
		// Re-seed so each round gets a fresh layout
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.resultSaved = false
		return m, nil
	}

	m.game.Apply(action)
	m.gameState = m.game.State()

	// Record the outcome once per round
	if m.gameState.Over() && !m.resultSaved {
		if m.store != nil {
			outcome := storage.OutcomeLost
			if m.gameState.Won {
				outcome = storage.OutcomeWon
			}
			b := m.game.Board()
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveResult(storage.Result{
				Outcome: outcome,
				Width:   b.Width(),
				Height:  b.Height(),
				Mines:   b.NumMines(),
			})
		}
		m.resultSaved = true
	}

	return m, nil
}

// handleResize processes window resize events. The board is never reset on
// resize; the game only re-centers, or pauses when the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, screenHeight(msg.Height))
	m.game.Resize(msg.Width, screenHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".minefield", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("minefield_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program with the given model.
func Run(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
