package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Renderer converts Screen buffers to styled strings. Styles are built
// once per color on the given lipgloss renderer, so SSH sessions get the
// color profile of their own terminal.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
}

// NewRenderer creates a renderer. A nil lg uses the local terminal.
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
	}
}

// style returns the cached style for c.
func (r *Renderer) style(c core.Color) lipgloss.Style {
	if st, ok := r.styles[c]; ok {
		return st
	}
	st := r.lg.NewStyle()
	if c != core.ColorDefault {
		st = st.Foreground(lipgloss.Color(c))
	}
	r.styles[c] = st
	return st
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(r.style(color).Render(run.String()))
		}
	}
	return sb.String()
}
