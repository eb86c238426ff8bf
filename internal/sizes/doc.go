// Package sizes provides the size store of a splitter.
//
// # Overview
//
// The Store owns the one size vector a splitter renders from. The drag and
// keyboard controllers, the structural reconciler and controlled sizes all
// write through it, and every write is passed through bounds.Sanitize
// before it becomes visible:
//
//	drag / keyboard ──> ApplySizes(next, emit=true)  ──┐
//	reconciler      ──> Reset(limits, defaults)      ──┼──> sanitized vector
//	controlled      ──> ApplySizes(next, emit=false) ──┘
//
// # Update Semantics
//
// ApplySizes compares the sanitized result with the committed vector using
// bounds.ArraysAlmostEqual. Equal vectors are dropped without touching state
// or firing callbacks, so a burst of pointer moves that clamp to the same
// result does not cause extra renders.
//
// Callbacks receive vectors rounded to two decimals. OnResize fires for every
// committed change made with emit set; OnResizeEnd fires only when a
// controller calls EmitResizeEnd at the end of an interaction.
//
// # Concurrency Model
//
// The store is guarded by a sync.RWMutex. Callbacks are invoked after the
// lock is released, so a callback may read the store again.
package sizes
