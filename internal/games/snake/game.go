package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Mode represents who steers the snake.
type Mode string

const (
	ModePlayer    Mode = "player"
	ModeAutopilot Mode = "autopilot"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Game drives one snake on one grid: it owns the board, the snake and the
// score, feeds input into the snake and respawns food.
type Game struct {
	mode  Mode
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	tick  uint64
	score int

	grid   *Grid
	snake  *Snake
	food   Position
	status Status
	pilot  *Pilot

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool
}

// New creates a player-controlled Snake game.
func New() *Game {
	return &Game{mode: ModePlayer}
}

// NewAutopilot creates a Snake game steered by the greedy pilot.
func NewAutopilot() *Game {
	return &Game{mode: ModeAutopilot, pilot: NewPilot()}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_autopilot", func() registry.Game {
		return NewAutopilot()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAutopilot {
		return "snake_autopilot"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAutopilot {
		return "Snake (Autopilot)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	width, height := cfg.GridW, cfg.GridH
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	heading, err := ParseDirection(cfg.Heading)
	if err != nil {
		heading = Up
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.status = StatusMoved
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.grid = NewGrid(width, height)
	origin := Position{X: width / 2, Y: height / 2}
	g.snake = NewSnakeHeading(origin, heading)
	g.grid.Put(origin, CellSnake)

	g.spawnFood()
	g.checkScreen()
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(screenW, screenH int) {
	g.screenW = screenW
	g.screenH = screenH
	g.checkScreen()
}

// checkScreen flags the game as paused while the board does not fit.
// A zero-sized screen means the game runs headless and is never too small.
func (g *Game) checkScreen() {
	if g.screenW == 0 && g.screenH == 0 {
		g.tooSmall = false
		return
	}
	cols, rows := g.grid.RenderSize()
	g.tooSmall = g.screenW < cols || g.screenH < rows+hudHeight
}

// spawnFood places the next apple; a full board wins the game.
func (g *Game) spawnFood() {
	pos, ok := g.grid.SpawnFood(g.rng)
	g.food = pos
	if !ok {
		g.won = true
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		cfg.ScreenW, cfg.ScreenH = g.screenW, g.screenH
		g.Reset(cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.processInput(input)

	g.status = g.snake.Update(g.grid)
	switch g.status {
	case StatusAte:
		g.score++
		g.spawnFood()
	case StatusDied:
		g.gameOver = true
	}

	return core.StepResult{State: g.State()}
}

// processInput hands every direction pressed since the last tick to the
// snake in arrival order; each one is validated against the heading left by
// the previous one.
func (g *Game) processInput(input core.InputFrame) {
	if g.mode == ModeAutopilot {
		g.snake.SetDir(g.pilot.Next(g.grid, g.snake, g.food))
		return
	}

	for _, a := range input.Actions() {
		if d, ok := actionDirection(a); ok {
			g.snake.SetDir(d)
		}
	}
}

// actionDirection maps a platform action to a heading.
func actionDirection(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return Left, true
	case core.ActionDown:
		return Down, true
	case core.ActionUp:
		return Up, true
	case core.ActionRight:
		return Right, true
	}
	return Up, false
}

// Frame returns the board as box-drawing text.
func (g *Game) Frame() string {
	return g.grid.Render()
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		cols, rows := g.grid.RenderSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", cols, rows+hudHeight))
		return
	}

	cols, rows := g.grid.RenderSize()
	board := core.CenteredRect(dst.Width(), dst.Height(), hudHeight, cols, rows)
	color := core.ColorGreen
	if g.gameOver {
		color = core.ColorRed
	}
	dst.DrawLines(board.X, board.Y, g.grid.Render(), color)

	switch {
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Heading: %s",
		g.Title(), g.score, g.snake.Len(), g.snake.Dir())
	dst.DrawTextColored(0, 0, hud, core.ColorYellow)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), 0, boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorCyan)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// Grid exposes the board for inspection.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Snake exposes the snake for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Status: %s\n", g.tick, g.score, g.status)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", g.snake.Len(), g.snake.Dir())
	head := g.snake.Head()
	fmt.Fprintf(&b, "Head: (%d, %d), Food: (%d, %d)\n", head.X, head.Y, g.food.X, g.food.Y)
	fmt.Fprintf(&b, "GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused)
	return b.String()
}
