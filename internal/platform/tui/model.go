package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// footerHeight is the number of rows reserved under the game for help.
const footerHeight = 1

// Model is the Bubble Tea model for running a game.
//
// Keys pressed between two ticks are queued in order and handed to the game
// together on the next tick. Every tick's input is recorded so the run can
// be replayed; the recording is saved when the game ends or the player quits.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	saver      replay.Saver
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *replay.Recorder
	ticker     int64
	keyMapper  *KeyMapper
	help       help.Model
	status     string
	saved      []string // IDs of recordings saved this session
	allowBack  bool     // Whether esc/b returns to a menu
	backToMenu bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
// saver may be nil, in which case nothing is recorded to disk.
func NewModel(game registry.Game, saver replay.Saver, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		saver:      saver,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		ticker:     nextTickerID(),
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW

	board := m.boardConfig()
	m.screen = core.NewScreen(board.ScreenW, board.ScreenH)
	m.startRun()

	return m
}

// boardConfig is the runtime config the game sees: the terminal minus the footer.
func (m Model) boardConfig() core.RuntimeConfig {
	cfg := m.config
	if cfg.ScreenH > 0 {
		cfg.ScreenH = max(cfg.ScreenH-footerHeight, 1)
	}
	return cfg
}

// startRun resets the game and starts a new recording.
func (m *Model) startRun() {
	cfg := m.boardConfig()
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.recorder = replay.NewRecorder(m.game.ID(), cfg)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.ticker, m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.ticker {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case m.allowBack && key.Matches(msg, keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.finishRun(replay.EndQuit)
			m.backToMenu = true
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finishRun(replay.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	board := m.boardConfig()
	m.screen.Resize(board.ScreenW, board.ScreenH)

	if r, ok := m.game.(replay.Resizer); ok {
		r.Resize(board.ScreenW, board.ScreenH)
		m.recorder.Resize(board.ScreenW, board.ScreenH)
		return m, nil
	}

	// Games that cannot resize in place start over
	if !m.gameState.GameOver {
		m.finishRun(replay.EndQuit)
		m.startRun()
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	// Restart with a fresh seed so the new run gets its own recording
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		m.status = ""
		m.inputFrame.Clear()
		return m, tickCmd(m.ticker, m.config.TickInterval())
	}

	m.recorder.Record(m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.finishRun(replay.EndGameOver)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.ticker, m.config.TickInterval())
}

// finishRun closes the current recording and saves it once.
func (m *Model) finishRun(reason string) {
	if m.recorder == nil || m.recorder.Finished() {
		return
	}
	rec := m.recorder.Finish(reason, m.gameState)
	if m.saver == nil || rec.Ticks == 0 {
		return
	}
	if err := m.saver.SaveRecording(rec); err != nil {
		m.status = fmt.Sprintf("recording not saved: %v", err)
		return
	}
	m.saved = append(m.saved, rec.ID)
	m.status = fmt.Sprintf("saved recording %s", shortID(rec.ID))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		m.status = fmt.Sprintf("screenshot failed: %v", err)
		return
	}
	m.status = "screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keyMapper.Keys())
	if m.status != "" {
		footer = truncate(m.status, m.config.ScreenW)
	}
	return RenderScreen(m.screen) + "\n" + footerStyle.Render(footer)
}

// Saved returns the IDs of the recordings saved so far.
func (m Model) Saved() []string {
	return m.saved
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// shortID trims a recording ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Run starts the Bubble Tea program with the given model and returns the
// IDs of the recordings it saved.
func Run(game registry.Game, saver replay.Saver, cfg core.RuntimeConfig) ([]string, error) {
	model := NewModel(game, saver, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.Saved(), nil
	}
	return nil, nil
}
