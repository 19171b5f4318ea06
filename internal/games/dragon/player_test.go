package dragon

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func TestPlayerFlapOverridesVelocity(t *testing.T) {
	for _, v := range []float64{-2.0, -0.4, 0, 1.2, 2.0} {
		p := Player{X: 5, Y: 25, Velocity: v}
		p.Flap()
		if p.Velocity != FlapVelocity {
			t.Errorf("Flap from velocity %v: got %v, expected %v", v, p.Velocity, FlapVelocity)
		}
		p.Flap()
		if p.Velocity != FlapVelocity {
			t.Errorf("repeated Flap should stay at %v, got %v", FlapVelocity, p.Velocity)
		}
	}
}

func TestPlayerVelocityRisesToTerminal(t *testing.T) {
	p := NewPlayer(5, 0)

	for step := 1; step <= 30; step++ {
		p.Advance()
		want := math.Min(float64(step)*Gravity, TerminalVelocity)
		if math.Abs(p.Velocity-want) > 1e-9 {
			t.Fatalf("step %d: velocity %v, expected %v", step, p.Velocity, want)
		}
		if p.Velocity > TerminalVelocity {
			t.Fatalf("step %d: velocity %v exceeds terminal velocity", step, p.Velocity)
		}
	}

	if p.Velocity != TerminalVelocity {
		t.Errorf("velocity should hold at exactly %v, got %v", TerminalVelocity, p.Velocity)
	}
}

func TestPlayerAdvanceMovesForward(t *testing.T) {
	p := NewPlayer(5, 25)
	p.Velocity = 1.9

	p.Advance()

	if p.X != 6 {
		t.Errorf("X should advance by one, got %d", p.X)
	}
	// 1.9 + 0.2 caps at 2.0, which moves two rows down
	if p.Y != 27 {
		t.Errorf("Y should be 27, got %d", p.Y)
	}
}

func TestPlayerAdvanceTruncatesTowardZero(t *testing.T) {
	p := NewPlayer(0, 20)
	p.Velocity = 0.6 // becomes 0.8, no movement

	p.Advance()
	if p.Y != 20 {
		t.Errorf("fractional downward velocity should not move, Y=%d", p.Y)
	}

	p.Flap() // -2.0 becomes -1.8, one row up
	p.Advance()
	if p.Y != 19 {
		t.Errorf("expected one row up, Y=%d", p.Y)
	}
}

func TestPlayerCeilingClamp(t *testing.T) {
	p := NewPlayer(0, 1)
	p.Flap()

	p.Advance() // -1.8 -> up one row to 0
	p.Advance() // -1.6 -> would be -1, clamped
	if p.Y != 0 {
		t.Errorf("Y should clamp at 0, got %d", p.Y)
	}
	if p.Velocity >= 0 {
		t.Errorf("clamp should not touch velocity, got %v", p.Velocity)
	}
}

func TestPlayerRender(t *testing.T) {
	frame, screen := newTestFrame(0, core.KeyNone)
	p := Player{X: 300, Y: 12}

	p.Render(frame, DefaultTheme())

	c := screen.GetCell(0, 12)
	if c.Rune != PlayerGlyph {
		t.Errorf("player should be drawn at column 0, got %q", c.Rune)
	}
	if c.Fg != DefaultTheme().Player || c.Bg != DefaultTheme().Backdrop {
		t.Errorf("player colors = %v on %v", c.Fg, c.Bg)
	}
}
