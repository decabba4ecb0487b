package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// MenuChoice identifies the action picked on the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceThemes
	MenuChoiceDifficulty
	MenuChoiceQuit
)

// menuItem is one selectable row of the main menu.
type menuItem struct {
	label  string
	choice MenuChoice
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []menuItem
	cursor    int
	width     int
	height    int
	status    string // One-line summary shown under the title (theme, difficulty)
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
	quitting  bool
}

// NewMenuModel creates a new main menu model.
func NewMenuModel(cfg core.RuntimeConfig, status string) MenuModel {
	return MenuModel{
		items: []menuItem{
			{label: "Play", choice: MenuChoicePlay},
			{label: "High Scores", choice: MenuChoiceScores},
			{label: "Themes", choice: MenuChoiceThemes},
			{label: "Difficulty", choice: MenuChoiceDifficulty},
			{label: "Quit", choice: MenuChoiceQuit},
		},
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		status:    status,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].choice
		return m, tea.Quit // Exit menu, caller dispatches

	case MenuActionScoreboard:
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	theme := ActiveTheme()
	var b strings.Builder

	// Title
	title := "B L O C K F A L L"
	b.WriteString("\n")
	b.WriteString(theme.Title.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(theme.Dim.Render(centerText(m.status, m.width)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Menu entries
	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := centerText(fmt.Sprintf("%s%s", cursor, item.label), m.width)
		if i == m.cursor {
			line = theme.Accent.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	// Footer with controls
	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(theme.Dim.Render(centerText(controls, m.width)))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected menu action.
func (m MenuModel) Choice() MenuChoice {
	if m.quitting {
		return MenuChoiceQuit
	}
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the main menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the main menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, status string) (MenuResult, error) {
	model := NewMenuModel(cfg, status)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	choice := m.Choice()
	if choice == MenuChoiceNone {
		choice = MenuChoiceQuit
	}

	return MenuResult{Choice: choice, Config: m.Config()}, nil
}
