package dragon

import "github.com/vovakirdan/flappy-dragon/internal/core"

// Theme holds the colors the session draws with.
type Theme struct {
	Player     core.Color
	Wall       core.Color
	Backdrop   core.Color // background behind the player and wall glyphs
	Background core.Color // playfield background while playing
}

// DefaultTheme returns the stock yellow dragon, red walls, navy sky.
func DefaultTheme() Theme {
	return Theme{
		Player:     core.ColorYellow,
		Wall:       core.ColorRed,
		Backdrop:   core.ColorBlack,
		Background: core.ColorNavy,
	}
}
