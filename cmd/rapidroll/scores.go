package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

The --scores flag selects the backend: paths ending in .db or .sqlite use
a SQLite database, anything else a JSON file.

Examples:
  rapidroll scores
  rapidroll scores --scores ~/.rapidroll/scores.db
  rapidroll scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Remove every recorded score")
}

func runScores(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger("rapidroll")
	if err != nil {
		exitf("%v", err)
	}
	defer closeLog()

	scores, err := openScores(flagScores, nil, logger)
	if err != nil {
		exitf("opening high scores: %v", err)
	}
	defer scores.Close()

	if flagClearScores {
		if err := scores.board.Clear(); err != nil {
			scores.Close()
			exitf("clearing high scores: %v", err)
		}
		fmt.Printf("Cleared high scores in %s\n", scores.path)
		return
	}

	entries := scores.board.Entries()

	fmt.Println("High Scores - Rapid Roll")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rapidroll play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Name", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "----", "-----", "----")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, e.Name, e.Score, e.DateTime)
	}

	fmt.Println()
	fmt.Printf("Best: %d\n", scores.board.Best())

	if scores.db != nil {
		stats, err := scores.db.Stats()
		if err == nil {
			fmt.Printf("Average: %.1f  Last played: %s\n", stats.AvgScore, stats.LastPlayed)
		}
	}
}
