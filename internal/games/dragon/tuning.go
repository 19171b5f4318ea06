package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Playfield and pacing. The playfield is the host grid.
const (
	ScreenWidth   = core.GridWidth
	ScreenHeight  = core.GridHeight
	FrameDuration = 33.0 // ms of accumulated frame time per physics step
)

// Player physics.
const (
	Gravity          = 0.2
	TerminalVelocity = 2.0
	FlapVelocity     = -2.0
	PlayerStartX     = 5
	PlayerStartY     = 25
)

// Obstacle generation.
const (
	GapMinY        = 10 // inclusive
	GapMaxY        = 40 // exclusive
	BaseGapSize    = 33
	MinGapSize     = 2
	LookAheadRatio = 1.25
	LookAheadSlots = 3
)

// Glyphs.
const (
	PlayerGlyph = '@'
	WallGlyph   = '|'
)
