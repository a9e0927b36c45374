package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

var flagAutopilot bool

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play Snake",
	Long: `Start playing. The run is recorded and saved when it ends.

Controls:
  Arrows/hjkl/WASD - Turn
  P/Space          - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Examples:
  snake play
  snake play snake_autopilot
  snake play --autopilot --fps 30
  snake play --seed 42 --config ./big-board.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the pilot steer")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagAutopilot {
		gameID = "snake_autopilot"
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	cfg, err := runtimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, saver := openSaver()
	saved, runErr := tui.Run(game, saver, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
	for _, id := range saved {
		fmt.Printf("Recorded run %s\n", id)
	}
}
