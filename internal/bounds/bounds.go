package bounds

import "math"

// Total is the size every vector is normalized to.
const Total = 100.0

// DefaultEpsilon is the tolerance used when comparing size vectors.
const DefaultEpsilon = 1e-4

const (
	redistributeEpsilon = 1e-9
	maxPasses           = 64
)

// Bounds is the allowed percentage range of one pane.
type Bounds struct {
	Min float64
	Max float64
}

// New clamps min and max into [0,100] and raises max to min when they cross.
func New(min, max float64) Bounds {
	min = clamp(finiteOr(min, 0), 0, Total)
	max = clamp(finiteOr(max, Total), 0, Total)
	if max < min {
		max = min
	}
	return Bounds{Min: min, Max: max}
}

// Unbounded is the [0,100] range.
func Unbounded() Bounds {
	return Bounds{Min: 0, Max: Total}
}

// Clamp returns v limited to b.
func (b Bounds) Clamp(v float64) float64 {
	return clamp(v, b.Min, b.Max)
}

// NormalizeToTotal rescales non-negative weights so they sum to total.
// Negative and non-finite weights count as zero; when nothing positive
// remains the result is an equal split.
func NormalizeToTotal(values []float64, total float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		v = finiteOr(v, 0)
		if v < 0 {
			v = 0
		}
		out[i] = v
		sum += v
	}
	if sum <= 0 {
		return equalSplit(len(values), total)
	}
	for i := range out {
		out[i] = out[i] * total / sum
	}
	return out
}

// EnforceBounds clamps values into their bounds and redistributes the
// resulting shortfall or excess so the vector still sums to total.
//
// Shortfall goes to panes in proportion to their headroom (max - current),
// excess is taken in proportion to slack (current - min), repeated until
// nothing is left to move. A remainder nobody can absorb is spread evenly,
// then everything is clamped again. If the bounds cannot reach total at all
// (sum of maxes below it, or sum of mins above it) the clamped vector is
// rescaled by total/sum, which can push individual panes outside their
// bounds. Missing bounds entries are treated as [0,100].
func EnforceBounds(values []float64, limits []Bounds, total float64) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	b := make([]Bounds, n)
	for i := range b {
		if i < len(limits) {
			b[i] = limits[i]
		} else {
			b[i] = Unbounded()
		}
		out[i] = b[i].Clamp(finiteOr(values[i], 0))
	}

	for pass := 0; pass < maxPasses; pass++ {
		diff := total - Sum(out)
		if math.Abs(diff) <= redistributeEpsilon {
			break
		}
		room := make([]float64, n)
		roomSum := 0.0
		for i := range out {
			if diff > 0 {
				room[i] = b[i].Max - out[i]
			} else {
				room[i] = out[i] - b[i].Min
			}
			if room[i] < 0 {
				room[i] = 0
			}
			roomSum += room[i]
		}
		if roomSum <= redistributeEpsilon {
			break
		}
		for i := range out {
			if room[i] == 0 {
				continue
			}
			share := math.Abs(diff) * room[i] / roomSum
			if share > room[i] {
				share = room[i]
			}
			if diff > 0 {
				out[i] += share
			} else {
				out[i] -= share
			}
		}
	}

	if rest := total - Sum(out); math.Abs(rest) > redistributeEpsilon {
		each := rest / float64(n)
		for i := range out {
			out[i] += each
		}
	}
	for i := range out {
		out[i] = b[i].Clamp(out[i])
	}

	sum := Sum(out)
	if sum <= 0 {
		return equalSplit(n, total)
	}
	if math.Abs(total-sum) > redistributeEpsilon {
		scale := total / sum
		for i := range out {
			out[i] *= scale
		}
	}
	return out
}

// Sanitize runs NormalizeToTotal and EnforceBounds against Total.
func Sanitize(values []float64, limits []Bounds) []float64 {
	return EnforceBounds(NormalizeToTotal(values, Total), limits, Total)
}

// ArraysAlmostEqual reports whether a and b have the same length and every
// pair of entries differs by at most epsilon.
func ArraysAlmostEqual(a, b []float64, epsilon float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

// PairRange returns the range pane A may take when it trades size only with
// pane B, along with the pair's combined size.
func PairRange(sizeA, sizeB float64, a, b Bounds) (lo, hi, pairTotal float64) {
	pairTotal = sizeA + sizeB
	lo = math.Max(a.Min, pairTotal-b.Max)
	hi = math.Min(a.Max, pairTotal-b.Min)
	return lo, hi, pairTotal
}

// Round returns a copy of values rounded to the given number of decimals.
func Round(values []float64, places int) []float64 {
	p := math.Pow(10, float64(places))
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = math.Round(v*p) / p
	}
	return out
}

// Sum adds values.
func Sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

func equalSplit(n int, total float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = total / float64(n)
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
