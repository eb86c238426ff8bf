// Package reconcile keeps a size store in step with the declared pane set.
//
// A signature of the ordered pane keys and their resolved default/min/max is
// taken on every Sync. A different signature means the pane set changed
// shape, and the store is reset to freshly computed defaults. A controlled
// vector of the right length is adopted whenever it differs from the store.
package reconcile

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/five82/panesplit/internal/bounds"
	"github.com/five82/panesplit/internal/pane"
	"github.com/five82/panesplit/internal/sizes"
)

// Defaults are the splitter-wide bounds used when a pane omits its own.
type Defaults struct {
	ItemMinSize *float64
	ItemMaxSize *float64
}

// Reconciler compares successive pane sets against a stored signature.
type Reconciler struct {
	store    *sizes.Store
	defaults Defaults
	logger   *log.Logger

	signature    string
	synced       bool
	lastMismatch string
}

// New returns a reconciler writing into store. A nil logger discards
// diagnostics.
func New(store *sizes.Store, defaults Defaults, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reconciler{store: store, defaults: defaults, logger: logger}
}

// Sync reconciles panes and an optional controlled vector with the store.
// It returns the panes actually in use (entries without a key are dropped)
// and whether the store was reset to defaults.
func (r *Reconciler) Sync(panes []pane.Pane, controlled []float64) ([]pane.Pane, bool) {
	panes = r.recognized(panes)
	limits := Limits(panes, r.defaults)
	sig := Signature(panes, limits)

	reset := false
	if !r.synced || sig != r.signature {
		r.store.Reset(limits, DefaultSizes(panes))
		r.signature = sig
		r.synced = true
		reset = true
		r.logger.Debug("pane set changed", "panes", len(panes))
	}

	if controlled != nil {
		if len(controlled) != len(panes) {
			key := fmt.Sprintf("%d/%d", len(controlled), len(panes))
			if key != r.lastMismatch {
				r.logger.Warn("ignoring controlled sizes: length does not match pane count",
					"sizes", len(controlled), "panes", len(panes))
				r.lastMismatch = key
			}
		} else {
			r.lastMismatch = ""
			r.store.ApplySizes(controlled, false)
		}
	}
	return panes, reset
}

func (r *Reconciler) recognized(panes []pane.Pane) []pane.Pane {
	out := make([]pane.Pane, 0, len(panes))
	seen := make(map[string]bool, len(panes))
	for i, p := range panes {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			r.logger.Warn("dropping pane without a key", "index", i)
			continue
		}
		if seen[key] {
			r.logger.Warn("duplicate pane key", "key", key, "index", i)
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// Limits resolves per-pane bounds, falling back to defaults and then to
// [0,100].
func Limits(panes []pane.Pane, defaults Defaults) []bounds.Bounds {
	out := make([]bounds.Bounds, len(panes))
	for i, p := range panes {
		min := pick(p.MinSize, defaults.ItemMinSize, 0)
		max := pick(p.MaxSize, defaults.ItemMaxSize, bounds.Total)
		out[i] = bounds.New(min, max)
	}
	return out
}

// DefaultSizes returns the declared default weights of panes.
func DefaultSizes(panes []pane.Pane) []float64 {
	out := make([]float64, len(panes))
	for i, p := range panes {
		out[i] = p.Weight()
	}
	return out
}

// Signature fingerprints the ordered pane set.
func Signature(panes []pane.Pane, limits []bounds.Bounds) string {
	var b strings.Builder
	for i, p := range panes {
		b.WriteString(strconv.Quote(p.Key))
		b.WriteByte(':')
		b.WriteString(strconv.FormatFloat(p.Weight(), 'g', -1, 64))
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(limits[i].Min, 'g', -1, 64))
		b.WriteByte('/')
		b.WriteString(strconv.FormatFloat(limits[i].Max, 'g', -1, 64))
		b.WriteByte(';')
	}
	return b.String()
}

func pick(own, fallback *float64, def float64) float64 {
	if own != nil {
		return *own
	}
	if fallback != nil {
		return *fallback
	}
	return def
}
