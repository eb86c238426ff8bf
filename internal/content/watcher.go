package content

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const (
	defaultInterval = 2 * time.Second
	defaultMaxLines = 200
	maxBackoff      = 30 * time.Second
)

// WatcherOptions configure a Watcher.
type WatcherOptions struct {
	Interval time.Duration // base refresh interval; zero uses 2s
	MaxLines int           // lines kept per pane; zero uses 200
	Logger   *log.Logger
}

// Watcher refreshes a Store from the files panes are bound to.
type Watcher struct {
	store    *Store
	files    map[string]string // pane key -> absolute path
	byPath   map[string][]string
	interval time.Duration
	maxLines int
	logger   *log.Logger
}

// NewWatcher returns a watcher for files, a map of pane key to file path.
func NewWatcher(store *Store, files map[string]string, opts WatcherOptions) *Watcher {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	maxLines := opts.MaxLines
	if maxLines <= 0 {
		maxLines = defaultMaxLines
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w := &Watcher{
		store:    store,
		files:    make(map[string]string, len(files)),
		byPath:   make(map[string][]string, len(files)),
		interval: interval,
		maxLines: maxLines,
		logger:   logger,
	}
	for key, path := range files {
		clean := filepath.Clean(path)
		w.files[key] = clean
		w.byPath[clean] = append(w.byPath[clean], key)
	}
	for _, keys := range w.byPath {
		sort.Strings(keys)
	}
	return w
}

// Refresh reads every watched file once and returns how many reads failed.
func (w *Watcher) Refresh() int {
	failures := 0
	for key, path := range w.files {
		if !w.refreshKey(key, path) {
			failures++
		}
	}
	return failures
}

func (w *Watcher) refreshKey(key, path string) bool {
	lines, err := Tail(path, w.maxLines)
	w.store.Update(key, lines, err)
	if err != nil {
		w.logger.Warn("pane content read failed", "pane", key, "path", path, "error", err)
		return false
	}
	return true
}

// Run refreshes the store until ctx is cancelled. File events trigger an
// immediate re-read of the affected panes; the timer re-reads everything.
// If fsnotify is unavailable the timer alone drives refreshes.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.files) == 0 {
		return nil
	}

	var events <-chan fsnotify.Event
	var errs <-chan error
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Warn("file notifications unavailable, polling only", "error", err)
	} else {
		defer fsw.Close()
		for _, dir := range w.dirs() {
			if err := fsw.Add(dir); err != nil {
				w.logger.Warn("watch directory failed", "dir", dir, "error", err)
			}
		}
		events, errs = fsw.Events, fsw.Errors
	}

	failures := 0
	if w.Refresh() > 0 {
		failures++
	}
	timer := time.NewTimer(calculateBackoff(failures, w.interval))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			for _, key := range w.byPath[filepath.Clean(ev.Name)] {
				w.refreshKey(key, w.files[key])
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			w.logger.Warn("file watcher error", "error", err)
		case <-timer.C:
			if w.Refresh() > 0 {
				failures++
			} else {
				failures = 0
			}
			next := calculateBackoff(failures, w.interval)
			if failures > 0 {
				w.logger.Debug("backing off content refresh", "failures", failures, "next", next)
			}
			timer.Reset(next)
		}
	}
}

func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var out []string
	for path := range w.byPath {
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			out = append(out, dir)
		}
	}
	sort.Strings(out)
	return out
}

// calculateBackoff doubles base for every consecutive failed round, capped
// at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}
