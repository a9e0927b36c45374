// Package config provides YAML-based configuration loading for the snake
// board, its pacing and the snake's starting heading.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all configuration for a Snake game.
type SnakeConfig struct {
	Grid   GridConfig    `yaml:"grid"`
	Timing TimingConfig  `yaml:"timing"`
	Snake  SnakeSettings `yaml:"snake"`
}

// GridConfig defines the board size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines simulation pacing.
type TimingConfig struct {
	TicksPerSecond int `yaml:"ticks_per_second"`
}

// SnakeSettings defines the snake's starting state.
type SnakeSettings struct {
	Heading string `yaml:"heading"` // "up", "down", "left" or "right"
}

// Validate checks that the configuration describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Timing.TicksPerSecond <= 0 {
		return fmt.Errorf("config: ticks_per_second must be positive, got %d", c.Timing.TicksPerSecond)
	}
	if _, err := snake.ParseDirection(c.Snake.Heading); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Runtime converts the configuration into the game's runtime settings.
// Screen dimensions are left zero for the platform to fill in.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: c.Timing.TicksPerSecond,
		Seed:     seed,
		GridW:    c.Grid.Width,
		GridH:    c.Grid.Height,
		Heading:  c.Snake.Heading,
	}
}
