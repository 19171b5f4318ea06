package dragon

import "math"

// Player is the flapping dragon. X only grows; the world scrolls under it.
type Player struct {
	X        int
	Y        int
	Velocity float64
}

// NewPlayer places a resting player at (x, y).
func NewPlayer(x, y int) Player {
	return Player{X: x, Y: y}
}

// Advance performs one physics step: gravity, vertical move, one column
// forward, ceiling clamp.
func (p *Player) Advance() {
	if p.Velocity < TerminalVelocity {
		p.Velocity = math.Min(p.Velocity+Gravity, TerminalVelocity)
	}
	p.Y += int(p.Velocity)
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap replaces the current velocity with an upward impulse.
func (p *Player) Flap() {
	p.Velocity = FlapVelocity
}

// Render draws the player at the left edge of the screen.
func (p Player) Render(c Console, th Theme) {
	c.Set(0, p.Y, th.Player, th.Backdrop, PlayerGlyph)
}
