package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Model is the Bubble Tea model that hosts one game session.
type Model struct {
	session  *dragon.Session
	screen   *core.Screen
	renderer *Renderer
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	watcher  *modeWatcher
	pending  core.Key  // Last signal seen since the previous frame
	lastTick time.Time // Zero until the first frame
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(session *dragon.Session, cfg core.RuntimeConfig, logger *log.Logger) Model {
	return Model{
		session:  session,
		screen:   core.NewScreen(core.GridWidth, core.GridHeight),
		renderer: NewRenderer(nil),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		watcher:  newModeWatcher(session, logger),
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the key for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sig, exit := m.keys.Resolve(msg)
	if exit {
		m.quitting = true
		return m, tea.Quit
	}
	if sig != core.KeyNone {
		m.pending = sig
	}
	return m, nil
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := core.NewFrame(m.screen, core.FrameInput{
		Elapsed: elapsedMs(m.lastTick, now),
		Key:     m.pending,
	})
	m.lastTick = now
	m.pending = core.KeyNone

	m.session.Tick(frame)
	m.watcher.observe()

	if frame.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// View renders the current screen and the key help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderer.Render(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the hosted game session.
func (m Model) Session() *dragon.Session {
	return m.session
}

// Run starts the Bubble Tea program for a session and blocks until the
// player quits.
func Run(session *dragon.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(session, cfg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
