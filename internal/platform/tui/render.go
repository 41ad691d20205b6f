package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg core.Color
	bg core.Color
}

// ScreenPainter converts Screen buffers to styled strings, caching one
// lipgloss style per color pair.
type ScreenPainter struct {
	styles map[styleKey]lipgloss.Style
}

// NewScreenPainter creates a painter with an empty style cache.
func NewScreenPainter() *ScreenPainter {
	return &ScreenPainter{styles: make(map[styleKey]lipgloss.Style)}
}

func (p *ScreenPainter) style(k styleKey) lipgloss.Style {
	if s, ok := p.styles[k]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if k.fg != core.ColorDefault {
		s = s.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != core.ColorDefault {
		s = s.Background(lipgloss.Color(k.bg))
	}
	p.styles[k] = s
	return s
}

// Paint converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func (p *ScreenPainter) Paint(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			k := styleKey{fg: start.Fg, bg: start.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.style(k).Render(run.String()))
		}
	}
	return sb.String()
}

// RenderScreen converts a Screen buffer to a styled string using a fresh
// style cache.
func RenderScreen(s *core.Screen) string {
	return NewScreenPainter().Paint(s)
}
