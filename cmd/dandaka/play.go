package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dandaka/internal/games/dandaka"
	"github.com/vovakirdan/dandaka/internal/platform/tui"
	"github.com/vovakirdan/dandaka/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run straight away.

Controls:
  A/D, Left/Right  - Run
  W, Up, Space     - Jump
  Z, J             - Shoot
  X, K             - Dash
  Enter            - Start / continue past a chapter
  P/Esc            - Pause
  R                - Restart (after the run ends)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Gentle contact damage, slower spawns
  normal - Defaults from the config
  hard   - Harder hits, faster spawns
  fixed  - No spawn progression

Examples:
  dandaka play
  dandaka play --difficulty hard
  dandaka play --seed 1234
  dandaka play --config ./my-dandaka.yaml --book ./my-book.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	gameCfg, err := prepareGame(flagDifficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.Create(dandaka.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, runtimeConfig(), sessionOptions(gameCfg, store, logger)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
