// Package pane defines the declarative pane set a splitter lays out.
package pane

import (
	"fmt"
	"strings"
)

// Direction selects the main axis of a splitter.
type Direction int

const (
	Horizontal Direction = iota // panes side by side, resized along X
	Vertical                    // panes stacked, resized along Y
)

// String returns the config spelling of d.
func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Flip returns the other direction.
func (d Direction) Flip() Direction {
	if d == Vertical {
		return Horizontal
	}
	return Vertical
}

// ParseDirection accepts "horizontal" or "vertical" (case-insensitive).
// Blank input means horizontal.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "h", "row":
		return Horizontal, nil
	case "vertical", "v", "column":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown direction %q", s)
	}
}

// Pane is one entry of the ordered pane set. Key is the caller-assigned
// identity used to detect structural change; nil size fields fall back to
// splitter-wide defaults.
type Pane struct {
	Key         string
	DefaultSize *float64 // weight, default 1
	MinSize     *float64 // percent
	MaxSize     *float64 // percent
}

// Weight returns the default-size weight, treating nil as 1 and invalid
// values as 0.
func (p Pane) Weight() float64 {
	if p.DefaultSize == nil {
		return 1
	}
	w := *p.DefaultSize
	if w != w || w < 0 { // NaN or negative
		return 0
	}
	return w
}

// Float returns a pointer to v, for filling optional Pane fields.
func Float(v float64) *float64 {
	return &v
}
