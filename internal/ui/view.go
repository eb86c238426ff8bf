package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/panesplit/internal/bounds"
	"github.com/five82/panesplit/internal/pane"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	body := m.split.View(m.renderPane)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderFooter(),
	)
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	sizes := bounds.Round(m.split.Sizes(), 2)
	parts := make([]string, len(sizes))
	for i, v := range sizes {
		parts[i] = fmt.Sprintf("%.2f", v)
	}

	segments := []string{
		styles.AccentText.Bold(true).Render("panesplit"),
		styles.MutedText.Render(m.direction.String()),
		styles.MutedText.Render(fmt.Sprintf("%d panes", len(m.panes))),
		styles.Text.Render(strings.Join(parts, " / ")),
	}
	if m.hub.SelectionSuppressed() {
		segments = append(segments, styles.WarningText.Render("resizing"))
	}
	if m.cfg.Disabled {
		segments = append(segments, styles.FaintText.Render("locked"))
	}

	sep := styles.FaintText.Render(" · ")
	return styles.Header.
		Width(m.width).
		MaxWidth(m.width).
		Render(strings.Join(segments, sep))
}

func (m Model) renderFooter() string {
	return m.theme.Styles().Footer.
		Width(m.width).
		MaxWidth(m.width).
		Render(m.help.View(m.keys))
}

// renderPane draws a title row followed by the tail of the pane's content.
func (m Model) renderPane(index int, p pane.Pane, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	styles := m.theme.Styles()

	title := p.Key
	if index < len(m.panes) && m.panes[index].Title != "" {
		title = m.panes[index].Title
	}
	sizes := m.split.Sizes()
	if index < len(sizes) {
		title = fmt.Sprintf("%s %.1f%%", title, sizes[index])
	}
	rows := []string{styles.PaneTitle.Render(truncate(title, width))}

	avail := height - 1
	if avail <= 0 {
		return rows[0]
	}
	if err := m.snapshot.Err(p.Key); err != nil {
		rows = append(rows, styles.DangerText.Render(truncate(err.Error(), width)))
		avail--
	}

	lines := m.snapshot.Lines(p.Key)
	if len(lines) > avail {
		lines = lines[len(lines)-avail:]
	}
	for _, line := range lines {
		rows = append(rows, styles.Text.Render(truncate(line, width)))
	}
	if len(lines) == 0 && avail > 0 && index < len(m.panes) && m.panes[index].File == "" {
		rows = append(rows, styles.FaintText.Render(truncate("no content source", width)))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}
