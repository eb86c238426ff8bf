// Package splitter composes the resize engine into a Bubble Tea friendly
// container.
//
// A Splitter owns one size store, the reconciler that feeds it defaults,
// and the drag and keyboard controllers that edit it. The host calls
// SetRect when the terminal resizes, SetPanes whenever the declared pane set
// may have changed, Update with every message, and View to draw.
//
//	┌────────── rect ──────────┐
//	│ pane 0 │ pane 1 │ pane 2 │   horizontal: dividers are columns
//	└──────────────────────────┘
//
// Sizes are percentages of the space left after dividers; Allocate turns
// them into whole cells. A pane may be drawn a cell wider or narrower than
// its exact share until the next resize.
//
// Mouse presses are hit-tested against divider cells. Motion and release
// go to the pointer hub, not to the divider, so a drag keeps tracking when
// the pointer leaves the divider. When several splitters share one hub,
// the hub's owner dispatches motion and each splitter only handles presses.
package splitter
