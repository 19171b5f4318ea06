package tui

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// ErrNoTerminal is returned when stdout is not an interactive terminal.
var ErrNoTerminal = errors.New("tui: stdout is not a terminal")

// PlayOptions configures a local game.
type PlayOptions struct {
	Backend string // config.BackendBubbleTea or config.BackendTcell
	Runtime core.RuntimeConfig
	Theme   dragon.Theme
	Logger  *log.Logger
}

// Play runs one local session on the chosen backend.
// Failing to bring up the display is returned as an error.
func Play(opts PlayOptions) error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return ErrNoTerminal
	}
	needW, needH := minTerminalSize(opts.Backend)
	if w, h, err := term.GetSize(fd); err == nil && (w < needW || h < needH) {
		opts.Logger.Warn("terminal smaller than the playfield",
			"width", w, "height", h,
			"need_width", needW, "need_height", needH,
		)
	}

	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	opts.Logger.Debug("starting", "backend", opts.Backend, "seed", opts.Runtime.Seed, "fps", opts.Runtime.TickRate)

	session := dragon.New(core.NewRand(opts.Runtime.Seed), dragon.WithTheme(opts.Theme))

	if opts.Backend == config.BackendTcell {
		return RunTcell(session, opts.Runtime, opts.Logger)
	}
	return Run(session, opts.Runtime, opts.Logger)
}

// minTerminalSize returns the terminal size a backend needs to show the
// whole grid. The Bubble Tea view adds a help line under it.
func minTerminalSize(backend string) (width, height int) {
	if backend == config.BackendTcell {
		return core.GridWidth, core.GridHeight
	}
	return core.GridWidth, core.GridHeight + 1
}
