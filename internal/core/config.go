package core

// Fixed display surface dimensions.
const (
	GridWidth  = 80
	GridHeight = 50
)

// RuntimeConfig contains configuration passed from the CLI to a host.
type RuntimeConfig struct {
	TickRate int   // Render frames per second (default 60)
	Seed     int64 // RNG seed for obstacle gaps
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of a session for hosts.
type GameState struct {
	Score    int  // Current score
	Playing  bool // Whether a run is in progress
	GameOver bool // Whether the last run has ended
}
