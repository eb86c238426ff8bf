// Package bounds holds the numeric core of the splitter: turning arbitrary
// weights into a size vector that sums to 100 and respects per-pane limits.
//
// # Overview
//
// Every size vector a splitter exposes goes through two steps:
//
//	weights ──> NormalizeToTotal ──> EnforceBounds ──> committed sizes
//
// NormalizeToTotal only rescales. EnforceBounds is where the limits are
// applied, and it works in three phases:
//
//  1. Clamp every entry into [Min, Max].
//  2. Redistribute. Clamping changes the total, so the difference is handed
//     back out: a shortfall in proportion to each pane's headroom, an excess
//     in proportion to each pane's slack. Passes repeat until the difference
//     is gone or no pane can move.
//  3. Clamp again, then rescale if the total is still off.
//
// A single clamp pass does not conserve the total, which would make the
// whole splitter visually grow or shrink.
//
// # Degenerate Limits
//
// When the limits cannot reach 100 (sum of maxes below 100, or sum of mins
// above 100) the final rescale wins over the limits: the vector always sums
// to 100 and some pane ends up outside its range. Panes are never dropped.
//
// # Helpers
//
//   - New: sanitizes caller-supplied min/max
//   - PairRange: the range pane A may take while trading only with pane B
//   - ArraysAlmostEqual: tolerant comparison used to skip redundant updates
//   - Round: the two-decimal rounding used for resize callbacks
package bounds
