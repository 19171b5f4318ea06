package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

func newTestModel() Model {
	session := dragon.New(core.NewRand(1))
	m := NewModel(session, core.DefaultConfig(), log.New(io.Discard))
	m.renderer = NewRenderer(lipgloss.NewRenderer(io.Discard))
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	m, cmd := update(t, m, TickMsg(start))
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	if m.Session().Mode() != dragon.ModeMenu {
		t.Errorf("mode = %v, want menu", m.Session().Mode())
	}
	if !strings.Contains(m.View(), "Welcome to Flappy Dragon") {
		t.Error("menu screen missing title")
	}
}

func TestModelKeyAppliesOnNextTick(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	if m.Session().Mode() != dragon.ModeMenu {
		t.Fatal("key must not act before the next frame")
	}

	m, _ = update(t, m, TickMsg(start))
	if m.Session().Mode() != dragon.ModePlaying {
		t.Fatalf("mode = %v, want playing", m.Session().Mode())
	}
	if !strings.Contains(m.View(), "Press SPACE to flap.") {
		t.Error("play screen missing HUD")
	}

	// The signal is consumed by one frame.
	m, _ = update(t, m, TickMsg(start.Add(10*time.Millisecond)))
	if m.pending != core.KeyNone {
		t.Errorf("pending = %v, want none", m.pending)
	}
}

func TestModelElapsedTimeAdvancesPlayer(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))
	x := m.Session().Player().X

	// 20ms + 20ms crosses the 33ms step.
	m, _ = update(t, m, TickMsg(start.Add(20*time.Millisecond)))
	if got := m.Session().Player().X; got != x {
		t.Fatalf("player moved after 20ms: x = %d", got)
	}
	m, _ = update(t, m, TickMsg(start.Add(40*time.Millisecond)))
	if got := m.Session().Player().X; got != x+1 {
		t.Errorf("player x = %d, want %d", got, x+1)
	}
}

func TestModelFlap(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, _ = update(t, m, TickMsg(start.Add(time.Millisecond)))

	if got := m.Session().Player().Velocity; got != dragon.FlapVelocity {
		t.Errorf("velocity = %v, want %v", got, dragon.FlapVelocity)
	}
}

func TestModelQuitFromMenu(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, runeKey('q'))
	if isQuit(cmd) {
		t.Fatal("q must wait for the frame")
	}
	m, cmd = update(t, m, TickMsg(time.Now()))
	if !isQuit(cmd) {
		t.Fatal("expected quit after q in menu")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitIgnoredWhilePlaying(t *testing.T) {
	m := newTestModel()
	start := time.Now()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(start))
	m, _ = update(t, m, runeKey('q'))
	m, cmd := update(t, m, TickMsg(start.Add(time.Millisecond)))

	if isQuit(cmd) {
		t.Error("q should not quit during a run")
	}
	if m.Session().Mode() != dragon.ModePlaying {
		t.Errorf("mode = %v, want playing", m.Session().Mode())
	}
}

func TestModelCtrlCExits(t *testing.T) {
	m := newTestModel()

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c should quit immediately")
	}
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel()

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 60})
	if cmd != nil {
		t.Error("resize should not schedule anything")
	}
	if m.help.Width != 120 {
		t.Errorf("help width = %d, want 120", m.help.Width)
	}
}

func TestElapsedMs(t *testing.T) {
	now := time.Now()
	if got := elapsedMs(time.Time{}, now); got != 0 {
		t.Errorf("first frame elapsed = %v, want 0", got)
	}
	if got := elapsedMs(now, now.Add(33*time.Millisecond)); got != 33 {
		t.Errorf("elapsed = %v, want 33", got)
	}
}

func TestFrameInterval(t *testing.T) {
	if got := frameInterval(30); got != time.Second/30 {
		t.Errorf("frameInterval(30) = %v", got)
	}
	if got := frameInterval(0); got != time.Second/60 {
		t.Errorf("frameInterval(0) = %v, want 60fps", got)
	}
}
