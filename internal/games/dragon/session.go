// Package dragon implements Flappy Dragon: a glyph that falls under gravity,
// flaps on input, and threads an endless run of narrowing walls.
//
// The package holds pure game logic. A host calls Session.Tick once per
// rendered frame with a Console that carries the frame's input and accepts
// draw commands.
package dragon

import (
	"fmt"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Console is the host surface for one tick. *core.Frame implements it.
type Console interface {
	FrameTime() float64
	Key() core.Key
	Cls()
	ClsBg(bg core.Color)
	Set(x, y int, fg, bg core.Color, glyph rune)
	Print(x, y int, text string)
	PrintCentered(y int, text string)
	Quit()
}

// Session owns all game state. It is not safe for concurrent use; a host
// drives it from a single loop.
type Session struct {
	player    Player
	obstacles []Obstacle
	score     int
	frameTime float64
	mode      Mode
	rng       core.Rand
	theme     Theme
}

// Option configures a Session.
type Option func(*Session)

// WithTheme overrides the default colors.
func WithTheme(th Theme) Option {
	return func(s *Session) {
		s.theme = th
	}
}

// New creates a session sitting in the main menu. rng supplies obstacle
// gap positions for the lifetime of the session.
func New(rng core.Rand, opts ...Option) *Session {
	s := &Session{
		rng:   rng,
		theme: DefaultTheme(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.reset()
	s.mode = ModeMenu
	return s
}

// Tick runs the handler for the current mode.
func (s *Session) Tick(c Console) {
	switch s.mode {
	case ModeMenu:
		s.mainMenu(c)
	case ModePlaying:
		s.play(c)
	case ModeEnded:
		s.dead(c)
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Score returns the number of walls cleared in the current run.
func (s *Session) Score() int {
	return s.score
}

// Player returns a copy of the player.
func (s *Session) Player() Player {
	return s.player
}

// Obstacles returns a copy of the wall sequence in world order.
func (s *Session) Obstacles() []Obstacle {
	out := make([]Obstacle, len(s.obstacles))
	copy(out, s.obstacles)
	return out
}

// State returns a summary for hosts.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		Playing:  s.mode == ModePlaying,
		GameOver: s.mode == ModeEnded,
	}
}

// restart begins a fresh run.
func (s *Session) restart() {
	s.reset()
	s.mode = ModePlaying
}

func (s *Session) reset() {
	s.player = NewPlayer(PlayerStartX, PlayerStartY)
	s.obstacles = []Obstacle{NewObstacle(ScreenWidth, 0, s.rng)}
	s.frameTime = 0
	s.score = 0
}

func (s *Session) mainMenu(c Console) {
	c.Cls()
	c.PrintCentered(5, "Welcome to Flappy Dragon")
	c.PrintCentered(8, "(P) Play Game")
	c.PrintCentered(9, "(Q) Quit Game")
	s.handleMenuKey(c)
}

func (s *Session) dead(c Console) {
	c.Cls()
	c.PrintCentered(5, "You are dead!")
	c.PrintCentered(6, fmt.Sprintf("You earned %d points", s.score))
	c.PrintCentered(8, "(P) Play Again")
	c.PrintCentered(9, "(Q) Quit Game")
	s.handleMenuKey(c)
}

// handleMenuKey applies the transitions shared by the menu and death screens.
func (s *Session) handleMenuKey(c Console) {
	switch c.Key() {
	case core.KeyStart:
		s.restart()
	case core.KeyQuit:
		c.Quit()
	}
}

func (s *Session) play(c Console) {
	c.ClsBg(s.theme.Background)

	s.frameTime += c.FrameTime()
	if s.frameTime > FrameDuration {
		s.frameTime = 0
		s.player.Advance()
	}
	if c.Key() == core.KeyFlap {
		s.player.Flap()
	}

	s.player.Render(c, s.theme)
	c.Print(0, 0, "Press SPACE to flap.")
	c.Print(0, 1, fmt.Sprintf("Score: %d", s.score))

	s.updateObstacles(c)
}

// updateObstacles runs the per-tick wall policy. The order matters: culling
// changes the score and sequence that collision and look-ahead read.
func (s *Session) updateObstacles(c Console) {
	for _, o := range s.obstacles {
		o.Render(c, s.player.X, s.theme)
	}
	s.cull()
	if s.crashed() {
		s.mode = ModeEnded
	}
	s.lookAhead()
}

// cull drops walls behind the player, scores them, and replaces them with
// one new wall a screen ahead. It returns the number removed.
func (s *Session) cull() int {
	before := len(s.obstacles)
	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		if o.X >= s.player.X {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept

	removed := before - len(kept)
	if removed > 0 {
		s.score += removed
		s.spawn()
	}
	return removed
}

// crashed reports whether the player fell off the bottom or hit a wall.
func (s *Session) crashed() bool {
	if s.player.Y > ScreenHeight {
		return true
	}
	for _, o := range s.obstacles {
		if o.Hit(s.player) {
			return true
		}
	}
	return false
}

// lookAhead spawns extra walls when the wall in slot len-1 is closer than
// the look-ahead distance. Slots are checked positionally, one after the
// other, so a spawn in one slot can trigger the next check in the same tick.
func (s *Session) lookAhead() {
	for slot := 0; slot < LookAheadSlots; slot++ {
		if len(s.obstacles) != slot+1 {
			continue
		}
		dist := s.obstacles[slot].X - s.player.X
		if dist == 0 {
			continue
		}
		if float64(ScreenWidth)/float64(dist) > LookAheadRatio {
			s.spawn()
		}
	}
}

func (s *Session) spawn() {
	s.obstacles = append(s.obstacles, NewObstacle(s.player.X+ScreenWidth, s.score, s.rng))
}
