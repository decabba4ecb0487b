package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start playing immediately, skipping the menu.

Controls:
  Left/H/A   - Move left
  Right/L/D  - Move right
  Down/J/S   - Soft drop
  Up/K/X/W   - Rotate clockwise
  Z          - Rotate counter-clockwise
  Space      - Hard drop
  P/Esc      - Pause
  R          - Restart
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow start, gentle speedup
  normal - Standard speed curve
  hard   - Fast start, steep speedup
  fixed  - No speedup, the interval never changes

Examples:
  blockfall play
  blockfall play --difficulty easy
  blockfall play --theme tower
  blockfall play --config ./my-blockfall.yaml --player alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Board theme: classic, tower")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Resolve the theme; it decides the board dimensions
	theme := resolveTheme(flagTheme)
	tui.SetTheme(theme)

	width, height := terminalSize()

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Configure the engine before creation
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	blockfall.SetFieldSize(theme.FieldWidth, theme.FieldHeight)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg, flagPlayer)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
