package splitter

import (
	"math"
	"sort"
)

// Rect is a cell rectangle in screen coordinates.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Allocate converts percentages into whole cells that add up to avail,
// using the largest-remainder method. Ties go to the earlier pane.
func Allocate(sizes []float64, avail int) []int {
	cells := make([]int, len(sizes))
	if avail <= 0 || len(sizes) == 0 {
		return cells
	}
	total := 0.0
	for _, v := range sizes {
		if v > 0 {
			total += v
		}
	}
	if total <= 0 {
		return cells
	}

	type rem struct {
		index int
		frac  float64
	}
	rems := make([]rem, len(sizes))
	used := 0
	for i, v := range sizes {
		if v < 0 {
			v = 0
		}
		exact := v / total * float64(avail)
		whole := math.Floor(exact)
		cells[i] = int(whole)
		used += cells[i]
		rems[i] = rem{index: i, frac: exact - whole}
	}
	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].frac > rems[b].frac
	})
	for i := 0; used < avail; i = (i + 1) % len(rems) {
		cells[rems[i].index]++
		used++
	}
	return cells
}
