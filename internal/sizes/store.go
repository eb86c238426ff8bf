package sizes

import (
	"sync"

	"github.com/five82/panesplit/internal/bounds"
)

// callbackPlaces is the rounding applied to vectors handed to callbacks.
const callbackPlaces = 2

// Callback receives a rounded size vector.
type Callback func(sizes []float64)

// Store holds the authoritative size vector of one splitter. All writes go
// through ApplySizes or Reset, so the vector is always normalized and
// bounds-enforced.
type Store struct {
	mu     sync.RWMutex
	sizes  []float64
	limits []bounds.Bounds

	onResize    Callback
	onResizeEnd Callback
}

// NewStore returns an empty store with the given callbacks (either may be nil).
func NewStore(onResize, onResizeEnd Callback) *Store {
	return &Store{onResize: onResize, onResizeEnd: onResizeEnd}
}

// Reset replaces the limits and the vector outright. The vector is
// sanitized against the new limits; no callback fires.
func (s *Store) Reset(limits []bounds.Bounds, sizes []float64) {
	next := bounds.Sanitize(sizes, limits)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.limits = cloneLimits(limits)
	s.sizes = next
}

// ApplySizes sanitizes next and commits it when it differs from the current
// vector. It reports whether anything changed. When emit is set and the
// vector changed, OnResize receives the committed vector rounded to two
// decimals. Re-applying a vector that sanitizes to the current one is a
// no-op.
func (s *Store) ApplySizes(next []float64, emit bool) bool {
	s.mu.Lock()
	if len(next) != len(s.limits) {
		s.mu.Unlock()
		return false
	}
	sanitized := bounds.Sanitize(next, s.limits)
	if bounds.ArraysAlmostEqual(sanitized, s.sizes, bounds.DefaultEpsilon) {
		s.mu.Unlock()
		return false
	}
	s.sizes = sanitized
	cb := s.onResize
	s.mu.Unlock()

	if emit && cb != nil {
		cb(bounds.Round(sanitized, callbackPlaces))
	}
	return true
}

// EmitResizeEnd delivers the current vector, rounded, to OnResizeEnd.
func (s *Store) EmitResizeEnd() {
	s.mu.RLock()
	cb := s.onResizeEnd
	current := bounds.Round(s.sizes, callbackPlaces)
	s.mu.RUnlock()

	if cb != nil {
		cb(current)
	}
}

// Sizes returns a copy of the current vector.
func (s *Store) Sizes() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSizes(s.sizes)
}

// Bounds returns a copy of the current per-pane limits.
func (s *Store) Bounds() []bounds.Bounds {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneLimits(s.limits)
}

// Len returns the number of panes the store tracks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sizes)
}

func cloneSizes(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	dup := make([]float64, len(values))
	copy(dup, values)
	return dup
}

func cloneLimits(values []bounds.Bounds) []bounds.Bounds {
	if len(values) == 0 {
		return nil
	}
	dup := make([]bounds.Bounds, len(values))
	copy(dup, values)
	return dup
}
