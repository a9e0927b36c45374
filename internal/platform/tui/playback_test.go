package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// recordRun plays a short game through Model and returns its recording.
func recordRun(t *testing.T) replay.Recording {
	t.Helper()
	saver := &fakeSaver{}
	m := NewModel(snake.New(), saver, testConfig())
	m, _ = update(t, m, keyPress("left"))
	m = tick(t, m)
	m, _ = update(t, m, keyPress("up"))
	m = untilGameOver(t, m)
	if len(saver.saved) != 1 {
		t.Fatalf("saved %d recordings, expected 1", len(saver.saved))
	}
	return saver.saved[0]
}

func playbackTick(m PlaybackModel) (PlaybackModel, tea.Cmd) {
	next, cmd := m.Update(TickMsg{ID: m.ticker})
	return next.(PlaybackModel), cmd
}

func TestPlaybackRunsToEnd(t *testing.T) {
	rec := recordRun(t)
	game := snake.New()
	m := NewPlaybackModel(game, rec, 80, 24)

	for i := uint64(0); i < rec.Ticks; i++ {
		if m.Finished() {
			t.Fatalf("finished early at tick %d", i)
		}
		m, _ = playbackTick(m)
	}
	if !m.Finished() {
		t.Fatal("playback should be finished")
	}
	if game.State().Score != rec.Score || !game.State().GameOver {
		t.Errorf("state = %+v, expected game over with score %d", game.State(), rec.Score)
	}
	if !strings.Contains(m.View(), "end of recording") {
		t.Error("View() should say the recording ended")
	}

	if _, cmd := playbackTick(m); cmd != nil {
		t.Error("a finished playback should stop ticking")
	}
}

func TestPlaybackPauseAndSpeed(t *testing.T) {
	rec := recordRun(t)
	m := NewPlaybackModel(snake.New(), rec, 80, 24)
	base := m.interval()

	next, _ := m.Update(keyPress("+"))
	m = next.(PlaybackModel)
	if m.interval() != base/2 {
		t.Errorf("interval = %v, expected %v", m.interval(), base/2)
	}
	for range len(playbackSpeeds) + 2 {
		next, _ = m.Update(keyPress("-"))
		m = next.(PlaybackModel)
	}
	if m.interval() != base {
		t.Errorf("interval = %v, expected %v at slowest", m.interval(), base)
	}

	next, _ = m.Update(keyPress("p"))
	m = next.(PlaybackModel)
	m, cmd := playbackTick(m)
	if m.player.Tick() != 0 {
		t.Errorf("paused playback advanced to tick %d", m.player.Tick())
	}
	if cmd == nil {
		t.Error("paused playback keeps its tick loop")
	}
	if !strings.Contains(m.View(), "paused") {
		t.Error("View() should say paused")
	}
}

func TestPlaybackKeepsRecordedScreen(t *testing.T) {
	rec := recordRun(t)
	game := snake.New()
	m := NewPlaybackModel(game, rec, 50, 15)
	m, _ = playbackTick(m)

	if strings.Contains(m.View(), "Window too small") {
		t.Error("the game should keep the recorded screen size, not the viewer's")
	}
	if rec.Config.ScreenW != core.DefaultConfig().ScreenW {
		t.Errorf("recorded ScreenW = %d", rec.Config.ScreenW)
	}
}
