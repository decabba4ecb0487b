// blockfall is a falling-block puzzle for the terminal.
//
// Usage:
//
//	blockfall                - Start the interactive menu
//	blockfall play           - Jump straight into a game
//	blockfall scores         - Show the high score table
//	blockfall themes         - List available board themes
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--db <path>       - Set database path (default: ~/.blockfall/scores.db)
//	--player <name>   - Player name recorded with scores
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/platform/tui"

	// Import the game to register it
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
)

// gameID is the registry id the engine registers under.
const gameID = "blockfall"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPlayer string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "blockfall",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - A falling-block puzzle in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle: stack the seven
pieces, clear lines, and chase the speed curve.

Available commands:
  play     - Play a game directly
  menu     - Interactive menu (also the default)
  scores   - View high scores
  themes   - List board themes

Examples:
  blockfall
  blockfall play --difficulty hard
  blockfall play --theme tower --player alice
  blockfall scores --top 20`,
	Run: runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with scores")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(themesCmd)
}

// terminalSize returns the terminal dimensions, falling back to 80x24
// when detection fails (e.g. output is not a terminal).
func terminalSize() (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		logger.Warn("could not detect terminal size, using 80x24", "error", err)
		return 80, 24
	}
	return w, h
}

// resolveTheme returns the theme to use: the explicit name when given,
// otherwise the persisted selection, otherwise classic.
func resolveTheme(name string) tui.Theme {
	if name == "" {
		settings, err := config.LoadSettings()
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Warn("could not load settings", "error", err)
		}
		name = settings.Theme
	}

	theme, ok := tui.ThemeByName(name)
	if !ok {
		logger.Warn("unknown theme, using classic",
			"theme", name, "available", strings.Join(tui.ThemeNames(), ", "))
		theme = tui.ClassicTheme()
	}
	return theme
}
