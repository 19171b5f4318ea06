package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// modeWatcher logs run transitions of a session after each frame.
type modeWatcher struct {
	session *dragon.Session
	logger  *log.Logger
	last    core.GameState
	runs    int
}

func newModeWatcher(session *dragon.Session, logger *log.Logger) *modeWatcher {
	return &modeWatcher{
		session: session,
		logger:  logger,
		last:    session.State(),
	}
}

// observe compares the session state with the previous frame's.
func (w *modeWatcher) observe() {
	state := w.session.State()
	if state.Playing == w.last.Playing && state.GameOver == w.last.GameOver {
		w.last = state
		return
	}

	w.logger.Debug("mode changed", "mode", w.session.Mode(), "score", state.Score)
	switch {
	case state.Playing && !w.last.Playing:
		w.runs++
		w.logger.Info("run started", "run", w.runs)
	case state.GameOver && !w.last.GameOver:
		w.logger.Info("run ended", "run", w.runs, "score", state.Score)
	}
	w.last = state
}
