package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// KeyMap defines the key bindings shared by every host.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Flap  key.Binding
	Start key.Binding
	Quit  key.Binding
	Exit  key.Binding // host-level, works in every mode
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "flap"),
		),
		Start: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "Q"),
			key.WithHelp("q", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Start, k.Quit, k.Exit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Start, k.Quit, k.Exit},
	}
}

// Resolve translates a key (a tea.KeyMsg or any named key) into a game
// signal. exit is true for the host-level exit binding.
func (k KeyMap) Resolve(pressed fmt.Stringer) (sig core.Key, exit bool) {
	switch {
	case key.Matches(pressed, k.Exit):
		return core.KeyNone, true
	case key.Matches(pressed, k.Flap):
		return core.KeyFlap, false
	case key.Matches(pressed, k.Start):
		return core.KeyStart, false
	case key.Matches(pressed, k.Quit):
		return core.KeyQuit, false
	}
	return core.KeyNone, false
}

// keyName adapts a plain key name to key.Matches.
type keyName string

func (k keyName) String() string {
	return string(k)
}
