// Package content supplies the text shown inside the demo host's panes.
//
// Each pane may name a file. Tail reads the last lines of that file with a
// ring buffer so large files cost O(maxLines) memory. Store keeps one
// snapshot per pane key behind a RWMutex and hands out deep copies, so the
// UI can render without holding locks.
//
// Watcher keeps the store fresh. It subscribes to the directories holding
// the watched files through fsnotify, which survives log rotation, and also
// refreshes on a timer. The timer interval doubles after every round in
// which at least one file failed to read, capped at maxBackoff, and drops
// back to the base interval after a clean round.
//
// A missing file is not a failure; it simply has no lines yet.
package content
