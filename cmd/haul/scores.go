package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heavy-haul/internal/haul"
	"github.com/vovakirdan/heavy-haul/internal/registry"
	"github.com/vovakirdan/heavy-haul/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 scores for a mode (default: the career).

A career scores the cash earned above the starting balance; a sprint
scores the final payment.

Examples:
  haul scores
  haul scores haul_sprint
  haul scores --all
  haul scores haul_sprint --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Show every recorded score")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := haul.CareerID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'haul list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s\n", registry.Title(gameID))
		return
	}

	if err := printScores(os.Stdout, store, gameID, flagScoresAll); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
	}
}

// printScores writes the top 10 scores of a mode, or all of them.
func printScores(w io.Writer, store *storage.Store, gameID string, all bool) error {
	var (
		scores []storage.ScoreEntry
		err    error
	)
	if all {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", registry.Title(gameID))

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'haul play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-12s  %s\n", i+1, haul.FormatMoney(entry.Score), dateStr)
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %s over %d games\n", haul.FormatMoney(stats.HighScore), stats.GamesCount)
	}
	return nil
}
