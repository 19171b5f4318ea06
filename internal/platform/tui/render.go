package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// ansiCodes maps core.Color to ANSI 256-color indexes. ColorDefault is
// absent and leaves the terminal color alone.
var ansiCodes = map[core.Color]int{
	core.ColorBlack:         0,
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorNavy:          17,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

type colorPair struct {
	fg, bg core.Color
}

// Renderer converts a Screen to a styled string. Each Bubble Tea program
// owns one, since SSH sessions need their own lipgloss renderer.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[colorPair]lipgloss.Style
}

// NewRenderer creates a renderer on top of a lipgloss renderer. A nil
// lipgloss renderer uses the process default.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[colorPair]lipgloss.Style),
	}
}

func (r *Renderer) style(p colorPair) lipgloss.Style {
	if st, ok := r.styles[p]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if code, ok := ansiCodes[p.fg]; ok {
		st = st.Foreground(lipgloss.ANSIColor(code))
	}
	if code, ok := ansiCodes[p.bg]; ok {
		st = st.Background(lipgloss.ANSIColor(code))
	}
	r.styles[p] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Fg, cell.Bg}

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Fg, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(pair).Render(run.String()))
		}
	}
	return sb.String()
}
