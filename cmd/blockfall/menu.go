package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Start blockfall in interactive menu mode. This is also what
running plain 'blockfall' does.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu.

Examples:
  blockfall menu
  blockfall menu --fps 30
  blockfall menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	// Uses global flags from main.go (--fps, --seed, --db, --player)
}

func runMenu(_ *cobra.Command, _ []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	// Apply the persisted theme
	tui.SetTheme(resolveTheme(""))

	// Difficulty picked in the menu applies to this session only
	difficulty := ""

	// Get terminal size
	width, height := terminalSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

menuLoop:
	for {
		status := fmt.Sprintf("Theme: %s  |  Difficulty: %s",
			tui.ActiveTheme().Name, difficultyLabel(difficulty))

		result, err := tui.RunMenu(cfg, status)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = result.Config

		switch result.Choice {
		case tui.MenuChoicePlay:
			theme := tui.ActiveTheme()

			// Configure the engine before creation
			blockfall.SetConfigPath(flagConfig)
			blockfall.SetDifficultyPreset(difficulty)
			blockfall.SetFieldSize(theme.FieldWidth, theme.FieldHeight)

			game, err := registry.Create(gameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				continue
			}

			// Fresh seed for each game
			cfg.Seed = time.Now().UnixNano()

			if err := tui.Run(game, store, cfg, flagPlayer); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			}

		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(store, gameID, "Blockfall", cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				break menuLoop // User quit from scoreboard
			}

		case tui.MenuChoiceThemes:
			selected, updatedCfg, thErr := tui.RunThemeSelector(cfg)
			cfg = updatedCfg
			if thErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", thErr)
				continue
			}
			if selected != nil {
				tui.SetTheme(*selected)
				if saveErr := config.SaveSettings(config.Settings{Theme: selected.Name}); saveErr != nil {
					logger.Warn("could not save settings", "error", saveErr)
				}
			}

		case tui.MenuChoiceDifficulty:
			chosen, updatedCfg, dfErr := tui.RunDifficultySelector(cfg, difficulty)
			cfg = updatedCfg
			if dfErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", dfErr)
				continue
			}
			if chosen != "" {
				difficulty = chosen
			}

		case tui.MenuChoiceQuit:
			break menuLoop
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}

// difficultyLabel names the session difficulty for the menu status line.
func difficultyLabel(preset string) string {
	if preset == "" {
		return "default"
	}
	return preset
}
