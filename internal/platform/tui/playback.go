package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// playbackSpeeds are the selectable multiples of the recorded tick rate.
var playbackSpeeds = []int{1, 2, 4, 8, 16}

// PlaybackKeyMap defines the key bindings for watching a recording.
type PlaybackKeyMap struct {
	Pause  key.Binding
	Faster key.Binding
	Slower key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlaybackKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Faster, k.Slower, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlaybackKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultPlaybackKeyMap returns default key bindings.
func DefaultPlaybackKeyMap() PlaybackKeyMap {
	return PlaybackKeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", " "),
			key.WithHelp("p", "pause"),
		),
		Faster: key.NewBinding(
			key.WithKeys("+", "=", "right", "l"),
			key.WithHelp("+", "faster"),
		),
		Slower: key.NewBinding(
			key.WithKeys("-", "left", "h"),
			key.WithHelp("-", "slower"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PlaybackModel replays a recording in the terminal.
type PlaybackModel struct {
	game     registry.Game
	player   *replay.Player
	rec      replay.Recording
	screen   *core.Screen
	keys     PlaybackKeyMap
	help     help.Model
	ticker   int64
	speed    int // index into playbackSpeeds
	paused   bool
	quitting bool
}

// NewPlaybackModel resets game with the recording's configuration.
// The game keeps the recorded screen size; width and height only size the view.
func NewPlaybackModel(game registry.Game, rec replay.Recording, width, height int) PlaybackModel {
	h := help.New()
	h.Width = width

	return PlaybackModel{
		game:   game,
		player: replay.NewPlayer(game, rec),
		rec:    rec,
		screen: core.NewScreen(width, max(height-footerHeight, 1)),
		ticker: nextTickerID(),
		keys:   DefaultPlaybackKeyMap(),
		help:   h,
	}
}

func (m PlaybackModel) interval() time.Duration {
	return m.rec.Config.TickInterval() / time.Duration(playbackSpeeds[m.speed])
}

// Init starts the tick loop.
func (m PlaybackModel) Init() tea.Cmd {
	return tickCmd(m.ticker, m.interval())
}

// Update handles messages.
func (m PlaybackModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Faster):
			m.speed = min(m.speed+1, len(playbackSpeeds)-1)
		case key.Matches(msg, m.keys.Slower):
			m.speed = max(m.speed-1, 0)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.ID != m.ticker {
			return m, nil
		}
		if !m.paused {
			m.player.Step()
		}
		if m.player.Done() {
			// Nothing left to play; wait for quit
			return m, nil
		}
		return m, tickCmd(m.ticker, m.interval())
	}

	return m, nil
}

// View renders the game and the playback status line.
func (m PlaybackModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	state := fmt.Sprintf("%dx", playbackSpeeds[m.speed])
	switch {
	case m.player.Done():
		state = "end of recording"
	case m.paused:
		state = "paused"
	}
	status := fmt.Sprintf("replay %s  tick %d/%d  %s  ", shortID(m.rec.ID), m.player.Tick(), m.rec.Ticks, state)
	m.help.Width = max(m.screen.Width()-len(status), 0)

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(truncate(status, m.screen.Width())+m.help.View(m.keys))
}

// Finished reports whether every recorded tick has been played.
func (m PlaybackModel) Finished() bool {
	return m.player.Done()
}

// RunPlayback plays a recording in the terminal until the user quits.
func RunPlayback(game registry.Game, rec replay.Recording, width, height int) error {
	p := tea.NewProgram(
		NewPlaybackModel(game, rec, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
