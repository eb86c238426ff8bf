// Package drag turns pointer drags on a divider into two-pane resizes.
package drag

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/panesplit/internal/bounds"
	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/pointer"
	"github.com/five82/panesplit/internal/sizes"
)

// Window is where a drag acquires global pointer tracking.
type Window interface {
	Add(kind pointer.Kind, fn pointer.Listener) pointer.ListenerID
	Remove(id pointer.ListenerID)
	SuppressSelection() (restore func())
}

// MeasureFunc returns the container's main-axis extent in the same units as
// pointer coordinates.
type MeasureFunc func() float64

// Options configure a Controller.
type Options struct {
	Direction pane.Direction
	Disabled  bool
	Measure   MeasureFunc
	Logger    *log.Logger
}

// session is the state of one in-progress drag. It doubles as the handle
// on the window listeners it holds.
type session struct {
	index     int
	startPos  float64
	extent    float64
	sizeA     float64
	pairTotal float64
	minA      float64
	maxA      float64

	listeners []pointer.ListenerID
	restore   func()
}

// Controller runs at most one drag session at a time.
type Controller struct {
	store  *sizes.Store
	window Window
	opts   Options
	logger *log.Logger

	active *session
}

// New returns a controller that resizes store and tracks pointers on window.
func New(store *sizes.Store, window Window, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{store: store, window: window, opts: opts, logger: logger}
}

// PointerDown starts a drag on divider index (between pane index and
// index+1). It returns false, leaving no session, when the press is not a
// primary press, the controller is disabled, the index is out of range, the
// container has no size yet, or the pair cannot move.
func (c *Controller) PointerDown(index int, ev pointer.Event) bool {
	c.release()

	if c.opts.Disabled || ev.Kind != pointer.Down || !ev.Primary() {
		return false
	}
	current := c.store.Sizes()
	limits := c.store.Bounds()
	if index < 0 || index > len(current)-2 {
		return false
	}
	extent := 0.0
	if c.opts.Measure != nil {
		extent = c.opts.Measure()
	}
	if extent <= 0 {
		c.logger.Debug("drag rejected: container has no extent", "divider", index)
		return false
	}
	lo, hi, pairTotal := bounds.PairRange(current[index], current[index+1], limits[index], limits[index+1])
	if lo >= hi {
		c.logger.Debug("drag rejected: pair cannot move", "divider", index, "min", lo, "max", hi)
		return false
	}

	s := &session{
		index:     index,
		startPos:  c.axis(ev),
		extent:    extent,
		sizeA:     current[index],
		pairTotal: pairTotal,
		minA:      lo,
		maxA:      hi,
	}
	s.listeners = []pointer.ListenerID{
		c.window.Add(pointer.Move, c.onMove),
		c.window.Add(pointer.Up, c.onEnd),
		c.window.Add(pointer.Cancel, c.onEnd),
	}
	s.restore = c.window.SuppressSelection()
	c.active = s
	c.logger.Debug("drag started", "divider", index, "min", lo, "max", hi)
	return true
}

// Active reports whether a drag is in progress and on which divider.
func (c *Controller) Active() (int, bool) {
	if c.active == nil {
		return -1, false
	}
	return c.active.index, true
}

// Close releases any session without emitting a resize end. Safe to call
// repeatedly.
func (c *Controller) Close() {
	c.release()
}

func (c *Controller) onMove(ev pointer.Event) {
	s := c.active
	delta := (c.axis(ev) - s.startPos) / s.extent * bounds.Total
	nextA := clamp(s.sizeA+delta, s.minA, s.maxA)

	next := c.store.Sizes()
	next[s.index] = nextA
	next[s.index+1] = s.pairTotal - nextA
	c.store.ApplySizes(next, true)
}

func (c *Controller) onEnd(pointer.Event) {
	c.release()
	c.store.EmitResizeEnd()
}

// release is the single teardown path for pointer-up, pointer-cancel,
// preemption and Close. Listeners are removed before anything else so no
// further move can reach onMove.
func (c *Controller) release() {
	s := c.active
	if s == nil {
		return
	}
	for _, id := range s.listeners {
		c.window.Remove(id)
	}
	c.active = nil
	if s.restore != nil {
		s.restore()
	}
}

func (c *Controller) axis(ev pointer.Event) float64 {
	if c.opts.Direction == pane.Vertical {
		return ev.Y
	}
	return ev.X
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
