package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab to browse recordings.
After a game ends, you return to the menu to play again.

Examples:
  snake menu
  snake menu --fps 8`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := runtimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, saver := openSaver()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size change from the menu
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsRuns {
			if store == nil {
				logger.Warn("no recordings database")
				continue
			}
			if !browseRuns(store, cfg.ScreenW, cfg.ScreenH) {
				return
			}
			continue
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if _, err := tui.Run(game, saver, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}

// browseRuns shows the recordings browser, playing back whatever is picked.
// It returns false if the user quit rather than going back.
func browseRuns(store *storage.Store, width, height int) bool {
	for {
		res, err := tui.RunRuns(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return false
		}
		if res.Selected == "" {
			return res.Back
		}
		if err := playRecording(store, res.Selected, width, height); err != nil {
			logger.Error("playback failed", "id", res.Selected, "error", err)
		}
	}
}
