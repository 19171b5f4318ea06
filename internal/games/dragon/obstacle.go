package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Obstacle is a vertical wall at world column X with a gap of roughly Size
// rows centered on GapY.
type Obstacle struct {
	X    int
	GapY int
	Size int
}

// NewObstacle builds a wall at x. The gap narrows as score grows; only its
// vertical position is random.
func NewObstacle(x, score int, rng core.Rand) Obstacle {
	return Obstacle{
		X:    x,
		GapY: rng.Range(GapMinY, GapMaxY),
		Size: GapSize(score),
	}
}

// GapSize returns the gap size for a wall created at the given score.
func GapSize(score int) int {
	return core.Max(MinGapSize, BaseGapSize-score)
}

// gapBounds returns the first and last row of the passable band.
func (o Obstacle) gapBounds() (top, bottom int) {
	half := o.Size / 2
	return o.GapY - half, o.GapY + half
}

// Render draws the wall relative to the player's world column. Cells off
// the canvas are left to the console to clip.
func (o Obstacle) Render(c Console, playerX int, th Theme) {
	screenX := o.X - playerX
	top, bottom := o.gapBounds()

	for y := 0; y < top; y++ {
		c.Set(screenX, y, th.Wall, th.Backdrop, WallGlyph)
	}
	for y := bottom; y < ScreenHeight; y++ {
		c.Set(screenX, y, th.Wall, th.Backdrop, WallGlyph)
	}
}

// Hit reports whether the player is in the wall's column and outside the gap.
func (o Obstacle) Hit(p Player) bool {
	top, bottom := o.gapBounds()
	return p.X == o.X && (p.Y < top || p.Y > bottom)
}
