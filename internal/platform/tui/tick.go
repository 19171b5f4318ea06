// Package tui hosts the game in a terminal. It owns the frame clock, maps
// physical keys to game signals and paints the cell screen, using Bubble Tea
// (local and over SSH via Wish) or tcell.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(frameInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameInterval returns the wall-clock time between frames.
func frameInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// elapsedMs returns the milliseconds between two frames, zero for the first.
func elapsedMs(last, now time.Time) float64 {
	if last.IsZero() {
		return 0
	}
	return float64(now.Sub(last)) / float64(time.Millisecond)
}
