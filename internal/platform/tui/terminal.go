package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// RunTcell hosts a session directly on a tcell screen and blocks until the
// player quits.
func RunTcell(session *dragon.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tui: cannot create tcell screen: %w", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("tui: cannot initialize tcell screen: %w", err)
	}
	defer scr.Fini()

	scr.SetStyle(tcell.StyleDefault)
	scr.Clear()

	return runTcell(scr, session, cfg, logger)
}

// runTcell is the frame loop over an initialized screen. Only this
// goroutine touches the session; tcell delivers events over a channel.
func runTcell(scr tcell.Screen, session *dragon.Session, cfg core.RuntimeConfig, logger *log.Logger) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go scr.ChannelEvents(events, quit)

	ticker := time.NewTicker(frameInterval(cfg.TickRate))
	defer ticker.Stop()

	keys := DefaultKeyMap()
	watcher := newModeWatcher(session, logger)
	screen := core.NewScreen(core.GridWidth, core.GridHeight)
	pending := core.KeyNone
	var last time.Time

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				sig, exit := keys.Resolve(tcellKeyName(ev))
				if exit {
					return nil
				}
				if sig != core.KeyNone {
					pending = sig
				}
			case *tcell.EventResize:
				scr.Sync()
			}

		case now := <-ticker.C:
			frame := core.NewFrame(screen, core.FrameInput{
				Elapsed: elapsedMs(last, now),
				Key:     pending,
			})
			last = now
			pending = core.KeyNone

			session.Tick(frame)
			watcher.observe()

			blit(scr, screen)
			scr.Show()

			if frame.Quitting() {
				return nil
			}
		}
	}
}

// tcellKeyName names a tcell key the way Bubble Tea does, so one KeyMap
// serves both hosts.
func tcellKeyName(ev *tcell.EventKey) keyName {
	switch ev.Key() {
	case tcell.KeyRune:
		return keyName(string(ev.Rune()))
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyEscape:
		return "esc"
	}
	return keyName(strings.ToLower(ev.Name()))
}

// blit copies the cell screen onto the tcell back buffer.
func blit(scr tcell.Screen, s *core.Screen) {
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.GetCell(x, y)
			scr.SetContent(x, y, c.Rune, nil, tcellStyle(c.Fg, c.Bg))
		}
	}
}

func tcellStyle(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
}

func tcellColor(c core.Color) tcell.Color {
	if code, ok := ansiCodes[c]; ok {
		return tcell.PaletteColor(code)
	}
	return tcell.ColorDefault
}
