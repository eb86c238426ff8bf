package content

import (
	"fmt"
	"sync"
	"time"
)

// Pane is the latest content read for one pane.
type Pane struct {
	Lines     []string
	Err       error
	Failures  int // consecutive failed reads
	UpdatedAt time.Time
}

// Snapshot is a point-in-time copy of every pane's content.
type Snapshot struct {
	Panes       map[string]Pane
	LastUpdated time.Time
}

// Lines returns the lines for key, or nil when the pane has no content.
func (s Snapshot) Lines(key string) []string {
	return s.Panes[key].Lines
}

// Err returns the last read error for key.
func (s Snapshot) Err(key string) error {
	return s.Panes[key].Err
}

// Store coordinates concurrent updates to pane content.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records a read of key. When err is non-nil the previous lines are
// kept and the error is recorded for display.
func (s *Store) Update(key string, lines []string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Panes == nil {
		s.snapshot.Panes = make(map[string]Pane)
	}
	now := time.Now()
	p := s.snapshot.Panes[key]
	if err != nil {
		p.Err = err
		p.Failures++
	} else {
		p.Lines = cloneLines(lines)
		p.Err = nil
		p.Failures = 0
	}
	p.UpdatedAt = now
	s.snapshot.Panes[key] = p
	s.snapshot.LastUpdated = now
}

// Snapshot returns a deep copy of the stored content.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{LastUpdated: s.snapshot.LastUpdated}
	if len(s.snapshot.Panes) == 0 {
		return snap
	}
	snap.Panes = make(map[string]Pane, len(s.snapshot.Panes))
	for key, p := range s.snapshot.Panes {
		p.Lines = cloneLines(p.Lines)
		if p.Err != nil {
			p.Err = fmt.Errorf("%w", p.Err)
		}
		snap.Panes[key] = p
	}
	return snap
}

func cloneLines(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	dup := make([]string, len(lines))
	copy(dup, lines)
	return dup
}
