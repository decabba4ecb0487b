package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// DifficultyModel lets users pick a gravity preset for the next game.
type DifficultyModel struct {
	presets   []string
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  string
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a new difficulty selection model.
// current marks the preset applied to the next game.
func NewDifficultyModel(width, height int, current string) DifficultyModel {
	presets := config.PresetNames()
	cursor := 0
	for i, p := range presets {
		if p == current {
			cursor = i
			break
		}
	}

	return DifficultyModel{
		presets:   presets,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.selected = m.presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// presetSummary describes the gravity curve a preset produces.
func presetSummary(name string) string {
	cfg := config.DefaultBlockfallConfig()
	config.ApplyBlockfallPreset(&cfg, config.DifficultyPreset(name))
	if cfg.Gravity.Factor >= 1.0 {
		return fmt.Sprintf("%dms per row, no speedup", cfg.Gravity.BaseMs)
	}
	return fmt.Sprintf("%dms per row, x%.2f per level", cfg.Gravity.BaseMs, cfg.Gravity.Factor)
}

// View renders the difficulty selection.
func (m DifficultyModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-8s %s", cursor, name, presetSummary(name))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset name, or empty if none was chosen.
func (m DifficultyModel) Selected() string {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector runs the difficulty selection and returns the chosen
// preset name, or empty if the user backed out.
func RunDifficultySelector(cfg core.RuntimeConfig, current string) (string, core.RuntimeConfig, error) {
	model := NewDifficultyModel(cfg.ScreenW, cfg.ScreenH, current)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", cfg, err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", cfg, nil
	}

	cfg.ScreenW = m.width
	cfg.ScreenH = m.height

	if m.IsQuitting() || m.WantsBack() {
		return "", cfg, nil
	}

	return m.Selected(), cfg, nil
}
