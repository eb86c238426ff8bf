// Package pointer models pointer input and the window-level listener
// registry that drag sessions attach to.
package pointer

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Kind is the pointer event type.
type Kind int

const (
	Down Kind = iota
	Move
	Up
	Cancel
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Type is the kind of device that produced an event.
type Type int

const (
	Mouse Type = iota
	Touch
	Pen
)

// Button identifies the pressed button of a Down event.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
	ButtonOther
)

// Event is one pointer event in host coordinates.
type Event struct {
	Kind   Kind
	X, Y   float64
	Button Button
	Type   Type
}

// Primary reports whether the event comes from the primary button or a
// touch contact.
func (e Event) Primary() bool {
	return e.Button == ButtonPrimary || e.Type == Touch
}

// Listener handles one event.
type Listener func(Event)

// ListenerID identifies a registered listener.
type ListenerID uint64

type registration struct {
	kind Kind
	fn   Listener
}

// Hub is the window: it delivers every pointer event to every listener
// registered for that kind, wherever the pointer is. It also tracks text
// selection suppression requested by drags.
type Hub struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[ListenerID]registration
	order     []ListenerID
	attached  int
	detached  int
	suppress  int
}

// NewHub returns an empty hub.
func NewHub() *Hub {
	return &Hub{listeners: make(map[ListenerID]registration)}
}

// Add registers fn for events of kind.
func (h *Hub) Add(kind Kind, fn Listener) ListenerID {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	id := h.nextID
	h.listeners[id] = registration{kind: kind, fn: fn}
	h.order = append(h.order, id)
	h.attached++
	return id
}

// Remove unregisters id. Removing an unknown id is a no-op.
func (h *Hub) Remove(id ListenerID) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.listeners[id]; !ok {
		return
	}
	delete(h.listeners, id)
	for i, v := range h.order {
		if v == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
	h.detached++
}

// Dispatch delivers ev to the listeners registered for its kind, in
// registration order. A listener removed while dispatch is running is not
// called.
func (h *Hub) Dispatch(ev Event) {
	h.mu.Lock()
	ids := make([]ListenerID, 0, len(h.order))
	for _, id := range h.order {
		if h.listeners[id].kind == ev.Kind {
			ids = append(ids, id)
		}
	}
	h.mu.Unlock()

	for _, id := range ids {
		h.mu.Lock()
		reg, ok := h.listeners[id]
		h.mu.Unlock()
		if ok {
			reg.fn(ev)
		}
	}
}

// Len returns the number of registered listeners.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Counts returns how many listeners were ever attached and detached.
func (h *Hub) Counts() (attached, detached int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.attached, h.detached
}

// SuppressSelection disables text selection until the returned restore
// function is called. Restore is idempotent.
func (h *Hub) SuppressSelection() (restore func()) {
	h.mu.Lock()
	h.suppress++
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			h.suppress--
			h.mu.Unlock()
		})
	}
}

// SelectionSuppressed reports whether any drag currently suppresses text
// selection.
func (h *Hub) SelectionSuppressed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.suppress > 0
}

// FromMouse converts a Bubble Tea mouse message into a pointer event. Wheel
// events and unknown actions are not pointer events.
func FromMouse(msg tea.MouseMsg) (Event, bool) {
	ev := Event{X: float64(msg.X), Y: float64(msg.Y), Type: Mouse}
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			ev.Button = ButtonPrimary
		case tea.MouseButtonRight:
			ev.Button = ButtonSecondary
		case tea.MouseButtonMiddle:
			ev.Button = ButtonMiddle
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
			tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
			return Event{}, false
		default:
			ev.Button = ButtonOther
		}
		ev.Kind = Down
	case tea.MouseActionMotion:
		ev.Kind = Move
	case tea.MouseActionRelease:
		ev.Kind = Up
	default:
		return Event{}, false
	}
	return ev, true
}
