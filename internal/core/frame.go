package core

// Frame is one host tick: the input observed since the previous tick and
// the screen the game draws into. It also carries the quit request back to
// the host.
type Frame struct {
	screen   *Screen
	input    FrameInput
	quitting bool
}

// NewFrame wraps a screen and this tick's input.
func NewFrame(s *Screen, in FrameInput) *Frame {
	return &Frame{screen: s, input: in}
}

// FrameTime returns the milliseconds elapsed since the previous tick.
func (f *Frame) FrameTime() float64 {
	return f.input.Elapsed
}

// Key returns the key signal for this tick.
func (f *Frame) Key() Key {
	return f.input.Key
}

// Cls clears the screen to default colors.
func (f *Frame) Cls() {
	f.screen.Clear()
}

// ClsBg clears the screen to the given background color.
func (f *Frame) ClsBg(bg Color) {
	f.screen.ClearBg(bg)
}

// Set plots one glyph with explicit colors.
func (f *Frame) Set(x, y int, fg, bg Color, glyph rune) {
	f.screen.SetCell(x, y, Cell{Rune: glyph, Fg: fg, Bg: bg})
}

// Print writes text starting at (x, y).
func (f *Frame) Print(x, y int, text string) {
	f.screen.DrawText(x, y, text)
}

// PrintCentered writes text centered on row y.
func (f *Frame) PrintCentered(y int, text string) {
	f.screen.DrawTextCentered(y, text)
}

// Quit asks the host to stop its loop after this tick.
func (f *Frame) Quit() {
	f.quitting = true
}

// Quitting reports whether Quit was called during this tick.
func (f *Frame) Quitting() bool {
	return f.quitting
}
