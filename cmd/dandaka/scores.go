package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dandaka/internal/games/dandaka"
	"github.com/vovakirdan/dandaka/internal/platform/tui"
	"github.com/vovakirdan/dandaka/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Open the interactive leaderboard of finished runs.

When stdout is not a terminal, or with --plain, the top runs are printed
as text instead.

Examples:
  dandaka scores
  dandaka scores --plain
  dandaka scores --plain --recent --limit 20`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print as text instead of opening the leaderboard")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "With --plain, list newest runs instead of best")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "With --plain, number of runs to print")
}

func runScores(_ *cobra.Command, _ []string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, dandaka.GameID, "Dandaka", cfg.ScreenW, cfg.ScreenH)
	}

	return printScores(store)
}

func printScores(store *storage.Store) error {
	var (
		runs []storage.Run
		err  error
	)
	if flagRecent {
		runs, err = store.RecentRuns(dandaka.GameID, flagLimit)
	} else {
		runs, err = store.TopRuns(dandaka.GameID, flagLimit)
	}
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}

	// Display runs
	if flagRecent {
		fmt.Println("Recent Runs - Dandaka")
	} else {
		fmt.Println("High Scores - Dandaka")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dandaka play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-2s  %-7s  %s\n", "Rank", "Score", "Kills", "Ch", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-2s  %-7s  %s\n", "----", "-----", "-----", "--", "------", "----")

	// Print runs
	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %-2d  %-7s  %s\n", i+1, r.Score, r.Kills, r.Chapter, r.Result(), dateStr)
	}

	// Show best run
	fmt.Println()
	best, err := store.BestRun(dandaka.GameID)
	if err == nil && best != nil {
		fmt.Printf("Best: %d (%s, chapter %d, seed %d)\n", best.Score, best.Result(), best.Chapter, best.Seed)
	}
	return nil
}
