package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

var flagBackend string

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	theme, err := cfg.Theme.Resolve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := newLogger(cfg.Log, "dragon", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Display.FPS
	runtime.Seed = cfg.Display.Seed

	err = tui.Play(tui.PlayOptions{
		Backend: strings.ToLower(cfg.Display.Backend),
		Runtime: runtime,
		Theme:   theme,
		Logger:  logger,
	})
	if err != nil {
		if errors.Is(err, tui.ErrNoTerminal) {
			fmt.Fprintln(os.Stderr, "Flappy Dragon needs an interactive terminal.")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
