package splitter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/panesplit/internal/pane"
)

// Styles control how dividers are drawn.
type Styles struct {
	Divider        lipgloss.Style
	DividerFocused lipgloss.Style
	DividerActive  lipgloss.Style
	Pane           lipgloss.Style
}

// DefaultStyles returns plain styles with no colors.
func DefaultStyles() Styles {
	return Styles{
		Divider:        lipgloss.NewStyle(),
		DividerFocused: lipgloss.NewStyle().Bold(true),
		DividerActive:  lipgloss.NewStyle().Bold(true).Reverse(true),
		Pane:           lipgloss.NewStyle(),
	}
}

// SetStyles replaces the divider and pane styles.
func (s *Splitter) SetStyles(styles Styles) {
	s.styles = styles
}

// Renderer draws the body of pane index into a width x height box.
type Renderer func(index int, p pane.Pane, width, height int) string

// View renders the panes and dividers into the splitter's rectangle.
func (s *Splitter) View(render Renderer) string {
	if s.rect.Width <= 0 || s.rect.Height <= 0 || len(s.panes) == 0 {
		return ""
	}
	cells := s.Cells()
	cross := s.crossExtent()
	active, dragging := s.drag.Active()

	parts := make([]string, 0, len(cells)*2)
	for i, main := range cells {
		if main > 0 {
			w, h := main, cross
			if s.direction == pane.Vertical {
				w, h = cross, main
			}
			body := ""
			if render != nil {
				body = render(i, s.panes[i], w, h)
			}
			parts = append(parts, s.styles.Pane.
				Width(w).Height(h).
				MaxWidth(w).MaxHeight(h).
				Render(body))
		}
		if i < len(cells)-1 {
			style := s.styles.Divider
			if dragging && active == i {
				style = s.styles.DividerActive
			} else if s.focus == i && !s.disabled {
				style = s.styles.DividerFocused
			}
			parts = append(parts, style.Render(s.dividerGlyphs(cross)))
		}
	}

	if s.direction == pane.Vertical {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (s *Splitter) dividerGlyphs(cross int) string {
	if s.direction == pane.Vertical {
		return strings.Repeat("─", cross)
	}
	return strings.TrimSuffix(strings.Repeat("│\n", cross), "\n")
}
