package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-xenzia/internal/games/snake"
	"github.com/vovakirdan/snake-xenzia/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored high score",
	Long: `Display the best score recorded in the high score database.

Examples:
  xenzia scores
  xenzia scores --db ./xenzia.db
  xenzia scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Clear the stored high score")
}

func runScores(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening high score database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.ClearHighScore(snake.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("High score cleared.")
		return
	}

	entry, err := store.HighScoreEntry(snake.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving high score: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Score - Snake Xenzia")
	fmt.Println()

	if entry == nil {
		fmt.Println("No high score recorded yet.")
		fmt.Println()
		fmt.Println("Play 'xenzia play' to set the first one!")
		return
	}

	fmt.Printf("  %-10s  %s\n", "Score", "Date")
	fmt.Printf("  %-10s  %s\n", "-----", "----")
	dateStr := "-"
	if !entry.UpdatedAt.IsZero() {
		dateStr = entry.UpdatedAt.Format("2006-01-02 15:04")
	}
	fmt.Printf("  %-10d  %s\n", entry.Score, dateStr)
}
