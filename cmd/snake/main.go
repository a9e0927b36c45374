// snake plays Snake in the terminal and records every run for replay.
//
// Usage:
//
//	snake play [mode]        - Play (snake or snake_autopilot)
//	snake menu               - Pick a mode interactively
//	snake list               - List available modes
//	snake runs               - Browse recorded runs
//	snake replay <id>        - Replay a recorded run
//	snake rm <id>            - Delete a recorded run
//	snake serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>        - Override ticks per second
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Recordings database (default: ~/.snake/replays.db)
//	--config <path>     - Custom snake.yaml
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal, with replays",
	Long: `Snake is a terminal Snake game. Every run is recorded so it can be
listed and replayed tick for tick.

Available commands:
  play     - Play directly
  menu     - Interactive mode picker
  list     - Show all modes
  runs     - Browse recorded runs
  replay   - Replay a recorded run
  rm       - Delete a recorded run
  serve    - Start SSH server for remote play

Examples:
  snake play
  snake play --autopilot --fps 20
  snake runs --plain
  snake replay 3f2a9c1e
  snake serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Ticks per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/replays.db", "Path to recordings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(serveCmd)
}
