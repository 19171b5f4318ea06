package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/dragon.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It matches
// defaults/dragon.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Display: Display{
			FPS:     60,
			Seed:    0,
			Backend: BackendBubbleTea,
		},
		Theme: Theme{
			Player:     "yellow",
			Wall:       "red",
			Backdrop:   "black",
			Background: "navy",
		},
		SSH: SSH{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
			DB:          "~/.dragon/sessions.db",
		},
		Log: Log{
			Level: "info",
		},
	}
}
