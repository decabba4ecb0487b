package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// controlsProvider is implemented by games that expose a key hint line.
type controlsProvider interface {
	Controls() string
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	player     string
	highScore  int
	quitting   bool
	scoreSaved bool  // Whether score has been saved for current game over
	saveErr    error // Last score-save failure, reported after the program exits
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		player:     player,
	}

	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}

	return m
}

// gameHeight returns the screen rows available to the game,
// reserving one row for the status footer.
func gameHeight(screenH int) int {
	h := screenH - 1
	if h < 1 {
		h = 1
	}
	return h
}

// gameConfig returns the runtime config the game sees: the terminal
// size minus the footer row.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.gameConfig())
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc pauses during play; the dedicated back action has no
	// other meaning inside a running game.
	if action == core.ActionBack {
		action = core.ActionPause
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	// Update screen size
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))

	// Reinitialize game with new dimensions if needed
	// Note: This resets the game - could be improved to preserve state
	if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		if m.store != nil && m.gameState.Score > 0 {
			_, err := m.store.SaveScore(
				m.game.ID(), m.player,
				m.gameState.Score, m.gameState.Lines, m.gameState.Level,
			)
			if err != nil {
				m.saveErr = err
			} else if m.gameState.Score > m.highScore {
				m.highScore = m.gameState.Score
			}
		}
		m.scoreSaved = true
	}

	// Restart (engine-handled) brings GameOver back to false; arm the
	// saver again for the next run.
	if !m.gameState.GameOver && m.scoreSaved {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".blockfall", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string, then append the status footer
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the single status row below the game screen.
func (m Model) footer() string {
	var parts []string
	if m.player != "" {
		parts = append(parts, "Player: "+m.player)
	}
	if m.highScore > 0 {
		parts = append(parts, fmt.Sprintf("Best: %d", m.highScore))
	}
	if c, ok := m.game.(controlsProvider); ok {
		parts = append(parts, c.Controls())
	}

	line := strings.Join(parts, "  |  ")
	if len(line) > m.config.ScreenW && m.config.ScreenW > 0 {
		line = line[:m.config.ScreenW]
	}
	return ActiveTheme().Dim.Render(line)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()

	// Report save failures only after leaving the alternate screen,
	// otherwise the warning would be swallowed by the TUI.
	if m, ok := finalModel.(Model); ok && m.saveErr != nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "blockfall",
		})
		logger.Warn("could not save score", "error", m.saveErr)
	}

	return err
}
