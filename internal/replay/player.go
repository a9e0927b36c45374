package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Resizer is implemented by games that react to screen size changes
// without being reset.
type Resizer interface {
	Resize(width, height int)
}

// Player feeds a recording back into a game one tick at a time.
type Player struct {
	game       registry.Game
	rec        Recording
	tick       uint64
	nextFrame  int
	nextResize int
	state      core.GameState
}

// NewPlayer resets game with the recording's configuration.
func NewPlayer(game registry.Game, rec Recording) *Player {
	game.Reset(rec.Config)
	return &Player{
		game:  game,
		rec:   rec,
		state: game.State(),
	}
}

// Done reports whether every recorded tick has been played.
func (p *Player) Done() bool {
	return p.tick >= p.rec.Ticks
}

// Tick returns the number of ticks played so far.
func (p *Player) Tick() uint64 {
	return p.tick
}

// State returns the game state after the last played tick.
func (p *Player) State() core.GameState {
	return p.state
}

// Step plays the next recorded tick. It is a no-op once Done.
func (p *Player) Step() core.GameState {
	if p.Done() {
		return p.state
	}
	p.tick++

	for p.nextResize < len(p.rec.Resizes) && p.rec.Resizes[p.nextResize].Tick <= p.tick {
		rs := p.rec.Resizes[p.nextResize]
		if r, ok := p.game.(Resizer); ok {
			r.Resize(rs.Width, rs.Height)
		}
		p.nextResize++
	}

	in := core.NewInputFrame()
	for p.nextFrame < len(p.rec.Frames) && p.rec.Frames[p.nextFrame].Tick <= p.tick {
		if f := p.rec.Frames[p.nextFrame]; f.Tick == p.tick {
			in = core.NewInputFrame(f.Actions...)
		}
		p.nextFrame++
	}

	p.state = p.game.Step(in).State
	return p.state
}

// Run plays the whole recording and checks that the run ends the way it
// was recorded.
func Run(game registry.Game, rec Recording) (core.GameState, error) {
	p := NewPlayer(game, rec)
	for !p.Done() {
		p.Step()
	}
	return p.state, p.Verify()
}

// Verify compares the replayed outcome with the recorded one.
func (p *Player) Verify() error {
	if p.state.Score != p.rec.Score {
		return fmt.Errorf("replay: recording %s diverged: score %d, recorded %d", p.rec.ID, p.state.Score, p.rec.Score)
	}
	if p.rec.EndReason == EndGameOver && !p.state.GameOver {
		return fmt.Errorf("replay: recording %s diverged: game still running after %d ticks", p.rec.ID, p.tick)
	}
	return nil
}
