package splitter

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/five82/panesplit/internal/drag"
	"github.com/five82/panesplit/internal/keyboard"
	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/pointer"
	"github.com/five82/panesplit/internal/reconcile"
	"github.com/five82/panesplit/internal/sizes"
)

// dividerCells is the thickness of a divider along the main axis.
const dividerCells = 1

// Options configure a Splitter. They are fixed for the splitter's lifetime.
type Options struct {
	Direction    pane.Direction
	Sizes        []float64 // controlled vector, must match the pane count
	OnResize     func(sizes []float64)
	OnResizeEnd  func(sizes []float64)
	Disabled     bool
	ItemMinSize  *float64
	ItemMaxSize  *float64
	KeyboardStep float64

	// Window is the pointer hub drags attach to. When nil the splitter
	// creates its own and dispatches mouse motion to it from Update; a
	// shared hub is dispatched by its owner.
	Window *pointer.Hub
	Styles *Styles
	Logger *log.Logger
}

// Splitter lays out an ordered pane set along one axis and resizes it from
// mouse drags and arrow keys.
type Splitter struct {
	id        string
	direction pane.Direction
	disabled  bool
	styles    Styles
	logger    *log.Logger

	store      *sizes.Store
	reconciler *reconcile.Reconciler
	drag       *drag.Controller
	keyboard   *keyboard.Controller
	window     *pointer.Hub
	ownsWindow bool

	panes []pane.Pane
	rect  Rect
	focus int
}

// New builds a splitter for panes. Options.Sizes, when it matches the pane
// count, is used instead of the declared defaults.
func New(panes []pane.Pane, opts Options) *Splitter {
	id := uuid.NewString()[:8]
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("splitter", id)

	window := opts.Window
	owns := window == nil
	if owns {
		window = pointer.NewHub()
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	s := &Splitter{
		id:         id,
		direction:  opts.Direction,
		disabled:   opts.Disabled,
		styles:     styles,
		logger:     logger,
		window:     window,
		ownsWindow: owns,
	}
	s.store = sizes.NewStore(opts.OnResize, opts.OnResizeEnd)
	s.reconciler = reconcile.New(s.store, reconcile.Defaults{
		ItemMinSize: opts.ItemMinSize,
		ItemMaxSize: opts.ItemMaxSize,
	}, logger)
	s.drag = drag.New(s.store, window, drag.Options{
		Direction: opts.Direction,
		Disabled:  opts.Disabled,
		Measure:   s.measure,
		Logger:    logger,
	})
	s.keyboard = keyboard.New(s.store, opts.Direction, opts.KeyboardStep, opts.Disabled)
	s.SetPanes(panes, opts.Sizes)
	return s
}

// SetPanes declares the current pane set and controlled vector. A change of
// keys, order, defaults or bounds resets the sizes to the new defaults;
// otherwise the live sizes are kept. A nil controlled vector leaves the
// sizes uncontrolled.
func (s *Splitter) SetPanes(panes []pane.Pane, controlled []float64) {
	used, reset := s.reconciler.Sync(panes, controlled)
	if reset {
		s.drag.Close()
	}
	s.panes = used
	if s.focus > len(used)-2 {
		s.focus = len(used) - 2
	}
	if s.focus < 0 {
		s.focus = 0
	}
}

// SetRect places the splitter on screen.
func (s *Splitter) SetRect(r Rect) {
	s.rect = r
}

// Rect returns the splitter's screen rectangle.
func (s *Splitter) Rect() Rect {
	return s.rect
}

// ID is a short identifier used in diagnostics.
func (s *Splitter) ID() string {
	return s.id
}

// Direction returns the splitter's main axis.
func (s *Splitter) Direction() pane.Direction {
	return s.direction
}

// Panes returns the pane set in use.
func (s *Splitter) Panes() []pane.Pane {
	out := make([]pane.Pane, len(s.panes))
	copy(out, s.panes)
	return out
}

// Sizes returns the current size vector.
func (s *Splitter) Sizes() []float64 {
	return s.store.Sizes()
}

// Window returns the pointer hub drags attach to.
func (s *Splitter) Window() *pointer.Hub {
	return s.window
}

// Keys returns the resize bindings for the splitter's direction.
func (s *Splitter) Keys() keyboard.KeyMap {
	return s.keyboard.Keys()
}

// Dividers returns the number of dividers.
func (s *Splitter) Dividers() int {
	if len(s.panes) < 2 {
		return 0
	}
	return len(s.panes) - 1
}

// FocusedDivider returns the divider receiving key presses, or -1 when there
// is none.
func (s *Splitter) FocusedDivider() int {
	if s.Dividers() == 0 {
		return -1
	}
	return s.focus
}

// FocusNext moves key focus to the next divider, wrapping around.
func (s *Splitter) FocusNext() {
	if n := s.Dividers(); n > 0 {
		s.focus = (s.focus + 1) % n
	}
}

// FocusPrev moves key focus to the previous divider, wrapping around.
func (s *Splitter) FocusPrev() {
	if n := s.Dividers(); n > 0 {
		s.focus = (s.focus - 1 + n) % n
	}
}

// Dragging reports the divider being dragged, if any.
func (s *Splitter) Dragging() (int, bool) {
	return s.drag.Active()
}

// Update feeds a Bubble Tea message to the splitter and reports whether it
// was consumed. Mouse presses on a divider start a drag; arrow keys resize
// the focused divider's pair. Focus loss cancels a drag.
func (s *Splitter) Update(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		ev, ok := pointer.FromMouse(msg)
		if !ok {
			return false
		}
		if ev.Kind == pointer.Down {
			idx := s.DividerAt(msg.X, msg.Y)
			if idx < 0 {
				return false
			}
			s.focus = idx
			s.drag.PointerDown(idx, ev)
			return true
		}
		if s.ownsWindow {
			s.window.Dispatch(ev)
		}
		_, dragging := s.drag.Active()
		return dragging || ev.Kind == pointer.Up
	case tea.BlurMsg:
		if s.ownsWindow {
			s.window.Dispatch(pointer.Event{Kind: pointer.Cancel})
		}
		return false
	case tea.KeyMsg:
		idx := s.FocusedDivider()
		if idx < 0 {
			return false
		}
		return s.keyboard.HandleKey(idx, msg)
	}
	return false
}

// Close tears down any drag in progress. The splitter must not be used
// afterwards.
func (s *Splitter) Close() {
	s.drag.Close()
}

// Cells returns the main-axis cell count of every pane for the current
// rectangle.
func (s *Splitter) Cells() []int {
	return Allocate(s.store.Sizes(), s.paneExtent())
}

// DividerAt returns the divider under screen cell (x, y), or -1.
func (s *Splitter) DividerAt(x, y int) int {
	if !s.rect.Contains(x, y) {
		return -1
	}
	main := x - s.rect.X
	if s.direction == pane.Vertical {
		main = y - s.rect.Y
	}
	pos := 0
	cells := s.Cells()
	for i := 0; i < len(cells)-1; i++ {
		pos += cells[i]
		if main >= pos && main < pos+dividerCells {
			return i
		}
		pos += dividerCells
	}
	return -1
}

func (s *Splitter) mainExtent() int {
	if s.direction == pane.Vertical {
		return s.rect.Height
	}
	return s.rect.Width
}

func (s *Splitter) crossExtent() int {
	if s.direction == pane.Vertical {
		return s.rect.Width
	}
	return s.rect.Height
}

// paneExtent is the main-axis space left for panes once dividers are placed.
func (s *Splitter) paneExtent() int {
	avail := s.mainExtent() - s.Dividers()*dividerCells
	if avail < 0 {
		return 0
	}
	return avail
}

func (s *Splitter) measure() float64 {
	return float64(s.paneExtent())
}
