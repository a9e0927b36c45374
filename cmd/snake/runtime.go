package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// runtimeConfig loads snake.yaml, applies the global flags and fills in
// the terminal size.
func runtimeConfig() (core.RuntimeConfig, error) {
	sc, err := config.LoadSnake(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if flagFPS > 0 {
		sc.Timing.TicksPerSecond = flagFPS
	}

	cfg := sc.Runtime(flagSeed)
	cfg.ScreenW, cfg.ScreenH = terminalSize()
	logger.Debug("runtime config",
		"grid", fmt.Sprintf("%dx%d", cfg.GridW, cfg.GridH),
		"tps", cfg.TickRate, "heading", cfg.Heading, "seed", cfg.Seed)
	return cfg, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openSaver opens the recordings database for a game session. Games still
// run without it; they just are not recorded.
func openSaver() (*storage.Store, replay.Saver) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open recordings database, runs will not be saved", "error", err)
		return nil, nil
	}
	return store, store
}
