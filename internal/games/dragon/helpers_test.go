package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// fixedRand always returns the same gap row.
type fixedRand struct {
	v int
}

func (r fixedRand) Range(min, max int) int {
	return r.v
}

// newTestFrame returns a frame over a fresh grid-sized screen.
func newTestFrame(elapsed float64, key core.Key) (*core.Frame, *core.Screen) {
	screen := core.NewScreen(ScreenWidth, ScreenHeight)
	return core.NewFrame(screen, core.FrameInput{Elapsed: elapsed, Key: key}), screen
}

// newPlayingSession returns a session already in a run with a known gap row.
func newPlayingSession() *Session {
	s := New(fixedRand{v: 25})
	s.restart()
	return s
}
