// Package replay records the input of a run and re-simulates it.
//
// Games are deterministic for a given RuntimeConfig, so a recording only
// needs the configuration, the ordered actions of every tick that had any,
// and the screen size changes the game was told about.
package replay

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// End reasons stored with a recording.
const (
	EndGameOver = "game_over"
	EndQuit     = "quit"
)

// Frame holds the actions fed to the game on one tick, in arrival order.
// Ticks are counted from 1.
type Frame struct {
	Tick    uint64
	Actions []core.Action
}

// Resize is a screen size change applied before the given tick.
type Resize struct {
	Tick   uint64
	Width  int
	Height int
}

// Recording is one run from Reset to game over or quit.
type Recording struct {
	ID        string
	GameID    string
	Config    core.RuntimeConfig
	Frames    []Frame // only ticks with input
	Resizes   []Resize
	Ticks     uint64
	Score     int
	EndReason string
	CreatedAt time.Time
}

// Saver persists finished recordings.
type Saver interface {
	SaveRecording(rec Recording) error
}

// Recorder accumulates a Recording while a game runs.
type Recorder struct {
	rec      Recording
	finished bool
}

// NewRecorder starts a recording for a game that was just Reset with cfg.
func NewRecorder(gameID string, cfg core.RuntimeConfig) *Recorder {
	return &Recorder{
		rec: Recording{
			ID:        uuid.NewString(),
			GameID:    gameID,
			Config:    cfg,
			CreatedAt: time.Now(),
		},
	}
}

// ID returns the recording's identifier.
func (r *Recorder) ID() string {
	return r.rec.ID
}

// Record notes the input of the tick about to be stepped.
func (r *Recorder) Record(in core.InputFrame) {
	if r.finished {
		return
	}
	r.rec.Ticks++
	if in.Empty() {
		return
	}
	r.rec.Frames = append(r.rec.Frames, Frame{
		Tick:    r.rec.Ticks,
		Actions: in.Clone().Actions(),
	})
}

// Resize notes a screen size change that takes effect before the next tick.
func (r *Recorder) Resize(width, height int) {
	if r.finished {
		return
	}
	r.rec.Resizes = append(r.rec.Resizes, Resize{
		Tick:   r.rec.Ticks + 1,
		Width:  width,
		Height: height,
	})
}

// Finish closes the recording. Later calls return the same recording.
func (r *Recorder) Finish(reason string, state core.GameState) Recording {
	if !r.finished {
		r.rec.EndReason = reason
		r.rec.Score = state.Score
		r.finished = true
	}
	return r.rec
}

// Ticks returns the number of ticks recorded so far.
func (r *Recorder) Ticks() uint64 {
	return r.rec.Ticks
}

// Finished reports whether Finish has been called.
func (r *Recorder) Finished() bool {
	return r.finished
}
