package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ThemeModel lets users pick a board theme.
type ThemeModel struct {
	themes    []Theme
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *Theme
	quitting  bool
	back      bool
}

// NewThemeModel creates a new theme selection model.
func NewThemeModel(width, height int) ThemeModel {
	themes := Themes()
	cursor := 0
	for i, t := range themes {
		if t.Name == ActiveTheme().Name {
			cursor = i
			break
		}
	}

	return ThemeModel{
		themes:    themes,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m ThemeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m ThemeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m ThemeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		if m.cursor < len(m.themes)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		theme := m.themes[m.cursor]
		m.selected = &theme
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the theme selection.
func (m ThemeModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT THEME", m.width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		mark := " "
		if t.Name == ActiveTheme().Name {
			mark = "*"
		}

		line := fmt.Sprintf("%s%s %-8s %dx%d  %s",
			cursor, mark, t.Name, t.FieldWidth, t.FieldHeight, t.Description)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen theme, or nil if none was chosen.
func (m ThemeModel) Selected() *Theme {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m ThemeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m ThemeModel) WantsBack() bool {
	return m.back
}

// RunThemeSelector runs the theme selection and returns the chosen theme,
// or nil if the user backed out.
func RunThemeSelector(cfg core.RuntimeConfig) (*Theme, core.RuntimeConfig, error) {
	model := NewThemeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(ThemeModel)
	if !ok {
		return nil, cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
