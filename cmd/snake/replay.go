package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var flagHeadless bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Replay a recorded run",
	Long: `Re-simulate a recorded run from its seed and inputs. The ID may be
shortened to any unique prefix.

With --headless the run is simulated without a terminal UI; the final
board and state are printed and the outcome is checked against the
recording.

Playback controls:
  P/Space  - Pause
  +/-      - Faster / slower
  Q/Esc    - Quit

Examples:
  snake replay 3f2a9c1e
  snake replay 3f2a --headless`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagHeadless, "headless", false, "Print the final frame instead of playing back")
}

func runReplay(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagHeadless {
		width, height := terminalSize()
		if err := playRecording(store, args[0], width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rec, game, err := loadRecording(store, args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	state, verifyErr := replay.Run(game, rec)
	if f, ok := game.(interface{ Frame() string }); ok {
		fmt.Println(f.Frame())
	}
	if d, ok := game.(interface{ DebugState() string }); ok {
		fmt.Print(d.DebugState())
	}
	fmt.Printf("Run %s: score %d after %d ticks (%s)\n", rec.ID, state.Score, rec.Ticks, rec.EndReason)

	if verifyErr != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", verifyErr)
		os.Exit(1)
	}
	logger.Debug("replay verified", "id", rec.ID, "seed", rec.Config.Seed)
}

// loadRecording fetches a recording and a fresh game of its mode.
func loadRecording(store *storage.Store, id string) (replay.Recording, registry.Game, error) {
	rec, err := store.LoadRecording(id)
	if err != nil {
		return replay.Recording{}, nil, err
	}
	game, err := registry.Create(rec.GameID)
	if err != nil {
		return replay.Recording{}, nil, err
	}
	return rec, game, nil
}

// playRecording plays a recording back in the terminal.
func playRecording(store *storage.Store, id string, width, height int) error {
	rec, game, err := loadRecording(store, id)
	if err != nil {
		return err
	}
	return tui.RunPlayback(game, rec, width, height)
}
