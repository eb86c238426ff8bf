// Package keyboard resizes a divider's pane pair in fixed steps.
package keyboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/panesplit/internal/bounds"
	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/sizes"
)

const (
	// DefaultStep is the percentage moved per key press.
	DefaultStep = 2.0
	// MinStep keeps a configured step from being a no-op.
	MinStep = 0.1
)

// KeyMap holds the bindings that move a divider.
type KeyMap struct {
	Decrease key.Binding // shrink the pane before the divider
	Increase key.Binding // grow the pane before the divider
	First    key.Binding // shrink as far as allowed
	Last     key.Binding // grow as far as allowed
}

// DefaultKeyMap returns arrow bindings matching direction: left/right for
// horizontal splitters, up/down for vertical ones.
func DefaultKeyMap(direction pane.Direction) KeyMap {
	dec, inc := "left", "right"
	decHelp, incHelp := "←", "→"
	if direction == pane.Vertical {
		dec, inc = "up", "down"
		decHelp, incHelp = "↑", "↓"
	}
	return KeyMap{
		Decrease: key.NewBinding(
			key.WithKeys(dec),
			key.WithHelp(decHelp, "Shrink pane"),
		),
		Increase: key.NewBinding(
			key.WithKeys(inc),
			key.WithHelp(incHelp, "Grow pane"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "Shrink fully"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Grow fully"),
		),
	}
}

// ShortHelp returns the step bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase}
}

// FullHelp returns all bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Decrease, k.Increase, k.First, k.Last}}
}

// Controller applies key presses to the pane pair around a divider.
type Controller struct {
	store    *sizes.Store
	keys     KeyMap
	step     float64
	disabled bool
}

// New returns a controller for store. A step below MinStep is raised to it;
// zero means DefaultStep.
func New(store *sizes.Store, direction pane.Direction, step float64, disabled bool) *Controller {
	return &Controller{
		store:    store,
		keys:     DefaultKeyMap(direction),
		step:     NormalizeStep(step),
		disabled: disabled,
	}
}

// NormalizeStep applies the default and the floor to a configured step.
func NormalizeStep(step float64) float64 {
	if step == 0 || step != step {
		return DefaultStep
	}
	if step < MinStep {
		return MinStep
	}
	return step
}

// Keys returns the active bindings.
func (c *Controller) Keys() KeyMap {
	return c.keys
}

// Step returns the effective step size.
func (c *Controller) Step() float64 {
	return c.step
}

// HandleKey applies msg to divider index. It reports whether msg was one of
// the controller's keys; a press that changes the sizes also emits a resize
// end, since each press is a complete interaction.
func (c *Controller) HandleKey(index int, msg tea.KeyMsg) bool {
	if c.disabled {
		return false
	}
	var target func(current, lo, hi float64) float64
	switch {
	case key.Matches(msg, c.keys.Decrease):
		target = func(cur, _, _ float64) float64 { return cur - c.step }
	case key.Matches(msg, c.keys.Increase):
		target = func(cur, _, _ float64) float64 { return cur + c.step }
	case key.Matches(msg, c.keys.First):
		target = func(_, lo, _ float64) float64 { return lo }
	case key.Matches(msg, c.keys.Last):
		target = func(_, _, hi float64) float64 { return hi }
	default:
		return false
	}

	current := c.store.Sizes()
	limits := c.store.Bounds()
	if index < 0 || index > len(current)-2 {
		return true
	}
	lo, hi, pairTotal := bounds.PairRange(current[index], current[index+1], limits[index], limits[index+1])
	if lo >= hi {
		return true
	}
	nextA := target(current[index], lo, hi)
	if nextA < lo {
		nextA = lo
	}
	if nextA > hi {
		nextA = hi
	}
	next := current
	next[index] = nextA
	next[index+1] = pairTotal - nextA
	if c.store.ApplySizes(next, true) {
		c.store.EmitResizeEnd()
	}
	return true
}
