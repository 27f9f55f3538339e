package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/dandaka/internal/config"
	"github.com/vovakirdan/dandaka/internal/core"
	"github.com/vovakirdan/dandaka/internal/games/dandaka"
	"github.com/vovakirdan/dandaka/internal/platform/tui"
	"github.com/vovakirdan/dandaka/internal/storage"
	"github.com/vovakirdan/dandaka/internal/story"
)

// openLogger builds the logger selected by --log-level and --log-file.
// fallback receives logs when no file is given. The returned func closes
// the file, if any.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// prepareGame checks the game-related flags and hands them to the game
// package. The game itself loads its config on Reset; loading here reports a
// broken file before the terminal switches to the alternate screen.
func prepareGame(preset string) (config.DandakaConfig, error) {
	if _, ok := config.ParsePreset(preset); !ok {
		return config.DandakaConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", preset)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.DandakaConfig{}, err
	}

	if flagBook != "" {
		if _, err := story.LoadBook(flagBook); err != nil {
			return config.DandakaConfig{}, err
		}
	}

	dandaka.SetConfigPath(flagConfig)
	dandaka.SetBookPath(flagBook)
	dandaka.SetDifficultyPreset(preset)
	return cfg, nil
}

// sessionOptions builds the terminal options from the game config.
func sessionOptions(cfg config.DandakaConfig, store *storage.Store, logger *log.Logger) tui.Options {
	opts := tui.DefaultOptions()
	opts.Store = store
	opts.Logger = logger
	if cfg.TUI.HoldWindow > 0 {
		opts.HoldWindow = time.Duration(cfg.TUI.HoldWindow * float64(time.Second))
	}
	if cfg.TUI.MaxFrameDelta > 0 {
		opts.MaxFrameDelta = cfg.TUI.MaxFrameDelta
	}
	return opts
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure is logged and play
// continues without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
