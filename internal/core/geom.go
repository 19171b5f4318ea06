// Package core provides the fundamental types shared by the game and its
// hosts: the cell screen, per-frame input, colors and the RNG capability.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
