package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// memStore is an in-memory RecordingStore.
type memStore struct {
	fakeSaver
}

func (s *memStore) RecentRecordings(gameID string, limit int) ([]storage.RunSummary, error) {
	var out []storage.RunSummary
	for i := len(s.saved) - 1; i >= 0; i-- {
		r := s.saved[i]
		if gameID != "" && r.GameID != gameID {
			continue
		}
		out = append(out, storage.RunSummary{
			ID: r.ID, GameID: r.GameID, Ticks: r.Ticks, Score: r.Score,
			EndReason: r.EndReason, CreatedAt: r.CreatedAt,
		})
	}
	return out, nil
}

func (s *memStore) LoadRecording(id string) (replay.Recording, error) {
	for _, r := range s.saved {
		if r.ID == id {
			return r, nil
		}
	}
	return replay.Recording{}, fmt.Errorf("recording %s: %w", id, storage.ErrNotFound)
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return sm, cmd
}

func TestSessionPlayThenWatch(t *testing.T) {
	store := &memStore{}
	m := NewSessionModel(store, testConfig())

	m, cmd := sessionUpdate(t, m, keyPress("enter"))
	if m.screen != screenGame || cmd == nil {
		t.Fatalf("enter should start a game, screen = %v", m.screen)
	}
	if m.game.game.ID() != "snake" {
		t.Errorf("started %q, expected snake", m.game.game.ID())
	}

	for !m.game.gameState.GameOver {
		m, _ = sessionUpdate(t, m, TickMsg{ID: m.game.ticker})
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d recordings, expected 1", len(store.saved))
	}

	m, _ = sessionUpdate(t, m, keyPress("b"))
	if m.screen != screenMenu {
		t.Fatalf("b after game over should return to menu, screen = %v", m.screen)
	}

	m, _ = sessionUpdate(t, m, keyPress("tab"))
	if m.screen != screenRuns {
		t.Fatalf("tab should open recordings, screen = %v", m.screen)
	}
	if len(m.runs.runs) != 1 {
		t.Fatalf("recordings listed = %d, expected 1", len(m.runs.runs))
	}

	m, cmd = sessionUpdate(t, m, keyPress("enter"))
	if m.screen != screenPlayback || cmd == nil {
		t.Fatalf("enter should start playback, screen = %v", m.screen)
	}
	if m.playback.rec.ID != store.saved[0].ID {
		t.Error("playback opened the wrong recording")
	}

	m, _ = sessionUpdate(t, m, keyPress("q"))
	if m.screen != screenMenu || m.quitting {
		t.Errorf("q in playback should return to menu, screen = %v", m.screen)
	}

	m, cmd = sessionUpdate(t, m, keyPress("q"))
	if !m.quitting || cmd == nil {
		t.Error("q in menu should end the session")
	}
}

func TestSessionStaleTickAfterBack(t *testing.T) {
	m := NewSessionModel(&memStore{}, testConfig())
	m, _ = sessionUpdate(t, m, keyPress("enter"))
	stale := m.game.ticker

	m, _ = sessionUpdate(t, m, keyPress("p"))
	m, _ = sessionUpdate(t, m, TickMsg{ID: stale})
	m, _ = sessionUpdate(t, m, keyPress("esc"))
	if m.screen != screenMenu {
		t.Fatalf("esc while paused should return to menu, screen = %v", m.screen)
	}

	m, _ = sessionUpdate(t, m, keyPress("enter"))
	m, cmd := sessionUpdate(t, m, TickMsg{ID: stale})
	if cmd != nil || m.game.recorder.Ticks() != 0 {
		t.Error("a tick from the previous game must not drive the new one")
	}
}

func TestSessionWithoutStore(t *testing.T) {
	m := NewSessionModel(nil, testConfig())

	m, _ = sessionUpdate(t, m, keyPress("tab"))
	if m.screen != screenRuns {
		t.Fatalf("tab should open recordings, screen = %v", m.screen)
	}
	m, _ = sessionUpdate(t, m, keyPress("esc"))
	if m.screen != screenMenu {
		t.Errorf("esc should go back, screen = %v", m.screen)
	}

	m, _ = sessionUpdate(t, m, keyPress("enter"))
	if m.screen != screenGame || m.game.saver != nil {
		t.Error("a session without storage plays without saving")
	}
}
