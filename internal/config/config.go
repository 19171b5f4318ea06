// Package config provides YAML-based configuration loading for Flappy Dragon.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Backend names accepted in display.backend.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Config contains all user-tunable settings.
type Config struct {
	Display Display `yaml:"display"`
	Theme   Theme   `yaml:"theme"`
	SSH     SSH     `yaml:"ssh"`
	Log     Log     `yaml:"log"`
}

// Display controls the local host loop.
type Display struct {
	FPS     int    `yaml:"fps"`
	Seed    int64  `yaml:"seed"`
	Backend string `yaml:"backend"`
}

// Theme names the colors used to draw the game.
type Theme struct {
	Player     string `yaml:"player"`
	Wall       string `yaml:"wall"`
	Backdrop   string `yaml:"backdrop"`
	Background string `yaml:"background"`
}

// SSH configures the remote play server.
type SSH struct {
	Address     string        `yaml:"address"`
	HostKey     string        `yaml:"host_key"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	DB          string        `yaml:"db"`
}

// Log configures logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks the config for values the hosts cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Display.FPS < 1 || c.Display.FPS > 240 {
		errs = append(errs, fmt.Errorf("display.fps must be in [1, 240], got %d", c.Display.FPS))
	}
	switch strings.ToLower(c.Display.Backend) {
	case BackendBubbleTea, BackendTcell:
	default:
		errs = append(errs, fmt.Errorf("display.backend: unknown backend %q", c.Display.Backend))
	}
	if _, err := c.Theme.Resolve(); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout must not be negative"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// Resolve converts color names into a game theme.
func (t Theme) Resolve() (dragon.Theme, error) {
	var th dragon.Theme
	fields := []struct {
		key  string
		name string
		dst  *core.Color
	}{
		{"theme.player", t.Player, &th.Player},
		{"theme.wall", t.Wall, &th.Wall},
		{"theme.backdrop", t.Backdrop, &th.Backdrop},
		{"theme.background", t.Background, &th.Background},
	}
	for _, f := range fields {
		c, err := core.ParseColor(f.name)
		if err != nil {
			return th, fmt.Errorf("%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return th, nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (l Log) LogLevel() log.Level {
	level, err := log.ParseLevel(l.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
