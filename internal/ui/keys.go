package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/panesplit/internal/keyboard"
)

// keyMap defines the host's bindings. Resize bindings come from the
// splitter so they follow its direction.
type keyMap struct {
	Quit        key.Binding
	Help        key.Binding
	CycleTheme  key.Binding
	NextDivider key.Binding
	PrevDivider key.Binding
	AddPane     key.Binding
	RemovePane  key.Binding
	Flip        key.Binding

	Resize keyboard.KeyMap
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap(resize keyboard.KeyMap) keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		NextDivider: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next divider"),
		),
		PrevDivider: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous divider"),
		),
		AddPane: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "Add pane"),
		),
		RemovePane: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "Remove pane"),
		),
		Flip: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "Flip direction"),
		),
		Resize: resize,
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextDivider, k.Resize.Decrease, k.Resize.Increase, k.Help, k.Quit}
}

// FullHelp returns key bindings for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextDivider, k.PrevDivider},
		{k.Resize.Decrease, k.Resize.Increase, k.Resize.First, k.Resize.Last},
		{k.AddPane, k.RemovePane, k.Flip},
		{k.CycleTheme, k.Help, k.Quit},
	}
}
