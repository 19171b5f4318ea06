package dragon

// Mode selects which handler runs each tick.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeEnded
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModeEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}
