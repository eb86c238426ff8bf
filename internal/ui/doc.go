// Package ui is the Bubble Tea host for the splitter demo.
//
// # Layout
//
//	┌─────────────────────────────────────────────┐
//	│ header: direction, pane count, live sizes   │  1 row
//	├─────────────────────────────────────────────┤
//	│ pane │ pane │ pane      (splitter.Splitter) │  height - 2
//	├─────────────────────────────────────────────┤
//	│ footer: short key help                      │  1 row
//	└─────────────────────────────────────────────┘
//
// # Pointer routing
//
// The model owns a pointer.Hub and shares it with the splitter. Presses go
// to the splitter for hit-testing; motion, release and focus loss are
// dispatched on the hub by the model, so a drag keeps tracking the pointer
// anywhere on screen. The header shows "resizing" while the hub has text
// selection suppressed.
//
// # Keys
//
// tab and shift+tab move divider focus; arrows, home and end resize the
// focused pair. + and - add and remove panes, which changes the pane-set
// signature and resets sizes to defaults. o flips the direction by building
// a fresh splitter and closing the old one. T cycles the theme and saves it
// to prefs. h or ? toggles help, q or ctrl+c quits.
//
// # Content
//
// A tick every refresh interval copies the content.Store snapshot into the
// model. Pane bodies show the tail of their file, or the pane's size when it
// has no file.
package ui
