// dandaka is a terminal action-platformer: an exile fights the demons of the
// Dandaka forest, chapter by chapter, up to the demon lord.
//
// Usage:
//
//	dandaka                  - Play (same as 'dandaka play')
//	dandaka play             - Play a run
//	dandaka menu             - Main menu with difficulty picker and scores
//	dandaka list             - List registered games
//	dandaka scores           - Show the leaderboard
//	dandaka story            - Print the narrative book
//	dandaka serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dandaka/scores.db)
//	--config <path>       - Custom game config YAML
//	--book <path>         - Custom narrative book YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/dandaka/internal/games/dandaka"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagBook       string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dandaka",
	Short: "Dandaka - a terminal action-platformer",
	Long: `Dandaka is a side-view action-platformer played in the terminal.
Fight through waves of demons, read the story between battles and face
the demon lord in the final chapter.

Available commands:
  play     - Play a run (default)
  menu     - Main menu with difficulty picker
  list     - Show registered games
  scores   - View the leaderboard
  story    - Print the narrative book
  serve    - Start SSH server for remote play

Examples:
  dandaka
  dandaka play --difficulty hard
  dandaka play --seed 42 --log-file ./dandaka.log --log-level debug
  dandaka scores --plain
  dandaka serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dandaka/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBook, "book", "", "Path to custom narrative book YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (the terminal is busy drawing the game)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(serveCmd)
}
