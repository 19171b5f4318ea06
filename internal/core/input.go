package core

// Key is the single discrete signal a host delivers with a frame.
// Physical keys are mapped to it by the platform layer.
type Key int

const (
	KeyNone  Key = iota
	KeyStart     // P - start or restart a run
	KeyQuit      // Q - leave the game from the menu or death screen
	KeyFlap      // Space - flap upward
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyStart:
		return "Start"
	case KeyQuit:
		return "Quit"
	case KeyFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}

// FrameInput is what a host observed since the previous frame.
type FrameInput struct {
	Elapsed float64 // Milliseconds since the last frame
	Key     Key     // Dominant key this frame, KeyNone if nothing was pressed
}
