package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dandaka/internal/games/dandaka"
	"github.com/vovakirdan/dandaka/internal/platform/tui"
	"github.com/vovakirdan/dandaka/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, start a run or open the leaderboard. After a run
ends you return to the menu.

Controls:
  Up/Down/j/k     - Navigate menu
  Left/Right      - Change difficulty
  Enter/Space     - Select
  Tab             - High scores
  Q/Esc           - Quit

Examples:
  dandaka menu
  dandaka menu --fps 30
  dandaka menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	preset := flagDifficulty

	// Menu loop
	for {
		best := 0
		if store != nil {
			if hs, hsErr := store.HighScore(dandaka.GameID); hsErr == nil {
				best = hs
			}
		}

		result, err := tui.RunMenu("Dandaka", best, preset, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		preset = string(result.Preset)

		switch result.Choice {
		case tui.ChoiceQuit:
			return nil

		case tui.ChoiceScores:
			if err := tui.RunScoreboard(store, dandaka.GameID, "Dandaka", cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		gameCfg, err := prepareGame(preset)
		if err != nil {
			return err
		}

		game, err := registry.Create(dandaka.GameID)
		if err != nil {
			return fmt.Errorf("creating game: %w", err)
		}

		// Fresh seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, cfg, sessionOptions(gameCfg, store, logger)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
