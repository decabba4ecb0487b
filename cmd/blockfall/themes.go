package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List board themes",
	Long: `Show all available board themes with their dimensions.
The persisted selection is marked with *.

Examples:
  blockfall themes
  blockfall play --theme tower`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(cmd *cobra.Command, args []string) {
	settings, err := config.LoadSettings()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not load settings", "error", err)
	}

	fmt.Println("Available themes:")
	fmt.Println()

	for _, t := range tui.Themes() {
		mark := " "
		if t.Name == settings.Theme {
			mark = "*"
		}
		fmt.Printf("  %s %-8s  %2dx%-2d  %s\n", mark, t.Name, t.FieldWidth, t.FieldHeight, t.Description)
	}

	fmt.Println()
	fmt.Println("Select a theme in the menu, or pass --theme to 'blockfall play'.")
}
