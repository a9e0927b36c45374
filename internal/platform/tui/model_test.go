package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// fakeSaver keeps saved recordings in memory.
type fakeSaver struct {
	saved []replay.Recording
	err   error
}

func (f *fakeSaver) SaveRecording(rec replay.Recording) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rec)
	return nil
}

func testConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// update feeds msg to m and returns the resulting Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, TickMsg{ID: m.ticker})
	return m
}

// untilGameOver ticks until the snake hits the top wall.
func untilGameOver(t *testing.T, m Model) Model {
	t.Helper()
	for range snake.DefaultHeight {
		m = tick(t, m)
		if m.gameState.GameOver {
			return m
		}
	}
	t.Fatal("game did not end")
	return m
}

func TestModelBoardLeavesRoomForFooter(t *testing.T) {
	m := NewModel(snake.New(), nil, testConfig())

	if m.screen.Width() != 80 || m.screen.Height() != 24-footerHeight {
		t.Errorf("screen = %dx%d, expected 80x%d", m.screen.Width(), m.screen.Height(), 24-footerHeight)
	}
	if got := m.recorder.Finish(replay.EndQuit, m.gameState).Config.ScreenH; got != 24-footerHeight {
		t.Errorf("recorded ScreenH = %d, expected %d", got, 24-footerHeight)
	}

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 24 {
		t.Errorf("View() has %d lines, expected 24", len(lines))
	}
}

func TestModelSavesOnGameOver(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(snake.New(), saver, testConfig())

	m = untilGameOver(t, m)
	m = tick(t, m)
	m = tick(t, m)

	if len(saver.saved) != 1 {
		t.Fatalf("saved %d recordings, expected 1", len(saver.saved))
	}
	rec := saver.saved[0]
	if rec.EndReason != replay.EndGameOver {
		t.Errorf("EndReason = %q, expected %q", rec.EndReason, replay.EndGameOver)
	}
	if rec.Ticks != snake.DefaultHeight/2+1 {
		t.Errorf("Ticks = %d, expected %d", rec.Ticks, snake.DefaultHeight/2+1)
	}
	if rec.GameID != "snake" {
		t.Errorf("GameID = %q, expected snake", rec.GameID)
	}
	if got := m.Saved(); len(got) != 1 || got[0] != rec.ID {
		t.Errorf("Saved() = %v, expected [%s]", got, rec.ID)
	}
	if !strings.Contains(m.View(), "saved recording "+shortID(rec.ID)) {
		t.Error("View() should report the saved recording")
	}

	state, err := replay.Run(snake.New(), rec)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if !state.GameOver {
		t.Error("replayed run should end in game over")
	}
}

func TestModelRestartStartsNewRecording(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(snake.New(), saver, testConfig())
	m = untilGameOver(t, m)
	first := m.recorder.ID()

	m, _ = update(t, m, keyPress("r"))
	m = tick(t, m)
	if m.gameState.GameOver {
		t.Fatal("restart should start a new game")
	}
	if m.recorder.ID() == first {
		t.Error("restart should start a new recording")
	}
	if m.recorder.Ticks() != 0 {
		t.Errorf("restart tick should not be recorded, got %d ticks", m.recorder.Ticks())
	}

	m, _ = update(t, m, keyPress("left"))
	m = tick(t, m)
	m, cmd := update(t, m, keyPress("q"))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	if len(saver.saved) != 2 {
		t.Fatalf("saved %d recordings, expected 2", len(saver.saved))
	}
	second := saver.saved[1]
	if second.EndReason != replay.EndQuit || second.Ticks != 1 {
		t.Errorf("second recording = %s after %d ticks, expected quit after 1", second.EndReason, second.Ticks)
	}
	if second.Config.Seed == saver.saved[0].Config.Seed {
		t.Error("restart should pick a new seed")
	}
	if len(second.Frames) != 1 || second.Frames[0].Actions[0] != core.ActionLeft {
		t.Errorf("Frames = %+v, expected one Left", second.Frames)
	}
}

func TestModelQuitWithoutTicksSavesNothing(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(snake.New(), saver, testConfig())

	m, _ = update(t, m, keyPress("ctrl+c"))
	if !m.IsQuitting() {
		t.Error("ctrl+c should quit")
	}
	if len(saver.saved) != 0 {
		t.Errorf("saved %d recordings, expected none", len(saver.saved))
	}
	if m.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelSaveErrorShownInFooter(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	m := NewModel(snake.New(), saver, testConfig())

	m = untilGameOver(t, m)
	if !strings.Contains(m.View(), "recording not saved: disk full") {
		t.Error("View() should show the save error")
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := NewModel(snake.New(), nil, testConfig())

	m, cmd := update(t, m, TickMsg{ID: m.ticker + 1})
	if cmd != nil {
		t.Error("a stale tick should not schedule another")
	}
	if m.recorder.Ticks() != 0 {
		t.Errorf("stale tick stepped the game: %d ticks", m.recorder.Ticks())
	}

	m = tick(t, m)
	if m.recorder.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", m.recorder.Ticks())
	}
}

func TestModelResizeIsRecorded(t *testing.T) {
	saver := &fakeSaver{}
	m := NewModel(snake.New(), saver, testConfig())
	m = tick(t, m)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})
	if m.screen.Width() != 40 || m.screen.Height() != 12-footerHeight {
		t.Errorf("screen = %dx%d, expected 40x%d", m.screen.Width(), m.screen.Height(), 12-footerHeight)
	}
	m = tick(t, m)
	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should pause the game")
	}

	m, _ = update(t, m, keyPress("q"))
	rec := saver.saved[0]
	if len(rec.Resizes) != 1 {
		t.Fatalf("Resizes = %+v, expected one", rec.Resizes)
	}
	if r := rec.Resizes[0]; r.Tick != 2 || r.Width != 40 || r.Height != 12-footerHeight {
		t.Errorf("Resize = %+v, expected tick 2 at 40x%d", r, 12-footerHeight)
	}
}

func TestModelBackToMenu(t *testing.T) {
	m := NewModel(snake.New(), nil, testConfig())

	m, _ = update(t, m, keyPress("esc"))
	if m.BackToMenu() {
		t.Error("back is disabled outside a menu session")
	}

	m.allowBack = true
	m, _ = update(t, m, keyPress("b"))
	if m.BackToMenu() {
		t.Error("back should only work when paused or over")
	}

	m, _ = update(t, m, keyPress("p"))
	m = tick(t, m)
	m, _ = update(t, m, keyPress("b"))
	if !m.BackToMenu() {
		t.Error("back should work while paused")
	}
}

func TestModelScreenshot(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := NewModel(snake.New(), nil, testConfig())
	m, _ = update(t, m, keyPress("ctrl+s"))

	files, err := filepath.Glob(filepath.Join(home, ".snake", "screenshots", "snake_*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Fatalf("found %d screenshots, expected 1", len(files))
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Score: 0") {
		t.Errorf("screenshot missing HUD:\n%s", data)
	}
	if !strings.Contains(m.View(), "screenshot saved") {
		t.Error("View() should report the screenshot")
	}
}
