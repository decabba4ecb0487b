package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Theme describes a visual identity for the playfield: the board dimensions
// it presents plus the lipgloss palette the renderer applies on top of the
// default colors.
type Theme struct {
	Name        string
	Description string

	// Board dimensions the theme presents. Selecting a theme rebuilds the
	// game with these, so a theme change always starts a fresh board.
	FieldWidth  int
	FieldHeight int

	// Cells overrides the default color mapping for screen cells.
	// Colors without an override fall back to the standard palette.
	Cells map[core.Color]lipgloss.Style

	// Chrome styles for menus, overlays and status lines.
	Title  lipgloss.Style
	Accent lipgloss.Style
	Dim    lipgloss.Style
}

// ClassicTheme returns the default look: the traditional 10x20 well with
// the standard piece colors.
func ClassicTheme() Theme {
	return Theme{
		Name:        "classic",
		Description: "Traditional 10x20 well",
		FieldWidth:  10,
		FieldHeight: 20,
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("229")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// TowerTheme returns the tall 10x24 variant with a cooler palette.
func TowerTheme() Theme {
	return Theme{
		Name:        "tower",
		Description: "Tall 10x24 well, cool palette",
		FieldWidth:  10,
		FieldHeight: 24,
		Cells: map[core.Color]lipgloss.Style{
			core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("168")),
			core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("79")),
			core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("222")),
			core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
			core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
			core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
			core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
			core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("87")),
		Accent: lipgloss.NewStyle().Foreground(lipgloss.Color("87")),
		Dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Themes returns all built-in themes in display order.
func Themes() []Theme {
	return []Theme{ClassicTheme(), TowerTheme()}
}

// ThemeByName looks up a built-in theme by name.
func ThemeByName(name string) (Theme, bool) {
	for _, t := range Themes() {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ThemeNames returns the names of all built-in themes.
func ThemeNames() []string {
	themes := Themes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

// Global theme variable (can be changed at runtime)
var activeTheme = ClassicTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	activeTheme = theme
}

// ActiveTheme returns the current global theme.
func ActiveTheme() Theme {
	return activeTheme
}
