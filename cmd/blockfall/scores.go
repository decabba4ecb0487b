package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/storage"
)

var flagTop int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best recorded games.

Examples:
  blockfall scores
  blockfall scores --top 20
  blockfall scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Get top scores
	scores, err := store.TopScores(gameID, flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Blockfall - High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-6d  %s\n",
			i+1, entry.Player, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	// Aggregate footer
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return
	}

	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.0f  Lines cleared: %d  Best level: %d\n",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines, stats.BestLevel)
}
