package distribute

import (
	"math"
	"slices"

	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/core/numeric"
)

// Algorithm computes a new size vector from a resolved layout, the sizes
// captured when the gesture started, the pivot index and the cumulative
// delta since the gesture started. [Distribute] is the default; the store
// accepts any function with this shape.
//
// Implementations must be pure: the same arguments must always produce the
// same result, and neither panels nor start may be modified.
type Algorithm func(panels layout.Layout, start []float64, pivot int, delta float64) []float64

// Distribute moves the handle after panels[pivot] by delta budget units.
//
// A positive delta grows the pivot panel and shrinks the panels after it; a
// negative delta grows the panel after the pivot and shrinks the pivot and
// the panels before it. The shrinking side gives up space closest-first,
// each panel stopping at its minimum. If that is not enough, collapsible
// panels on the same side are snapped to zero in the same order. Whatever
// the shrinking side cannot supply is taken back from the growing panel, so
// the total is always conserved.
//
// A trailing pivot (the last panel) is treated as the handle before it with
// the delta negated. A collapsed neighbour is never partially revealed: if
// delta is not large enough to bring it to its minimum, start is returned.
//
// The result is always a fresh slice rounded to [numeric.Precision] digits.
// Inputs that cannot describe a drag (fewer than two panels, a snapshot of
// the wrong length, a pivot out of range, a zero delta) return a copy of
// start.
func Distribute(panels layout.Layout, start []float64, pivot int, delta float64) []float64 {
	n := len(panels)
	if n < 2 || len(start) != n || pivot < 0 || pivot >= n || numeric.IsZero(delta) {
		return slices.Clone(start)
	}

	if pivot == n-1 {
		pivot--
		delta = -delta
	}

	// The panel that receives space and the first panel that gives it up.
	grow, first, step := pivot, pivot+1, 1
	if delta < 0 {
		grow, first, step = pivot+1, pivot, -1
	}
	budget := math.Abs(delta)

	result := slices.Clone(start)
	neighbour := panels[grow]
	collapsed := neighbour.Collapsible && numeric.IsZero(start[grow])

	virtual := start[grow] + budget
	if collapsed && virtual < neighbour.MinSize {
		return slices.Clone(start)
	}
	result[grow] = numeric.Clamp(virtual, neighbour.MinSize, neighbour.MaxSize)

	remaining := math.Min(neighbour.MaxSize-start[grow], budget)
	var spent float64

	inRange := func(i int) bool { return i >= 0 && i < n }

	for i := first; inRange(i) && !numeric.IsZero(remaining); i += step {
		if numeric.IsZero(start[i]) {
			continue
		}
		p := panels[i]
		size := numeric.Clamp(start[i]-remaining, p.MinSize, p.MaxSize)
		absorbed := start[i] - size
		remaining -= absorbed
		spent += absorbed
		result[i] = size
	}

	for i := first; inRange(i) && !numeric.IsZero(remaining); i += step {
		if numeric.IsZero(start[i]) {
			continue
		}
		p := panels[i]
		if p.Collapsible && remaining >= p.MinSize {
			remaining -= p.MinSize
			spent += p.MinSize
			result[i] = 0
		}
	}

	if remaining > numeric.Epsilon {
		reconciled := start[grow] + spent
		if collapsed && reconciled < neighbour.MinSize {
			return slices.Clone(start)
		}
		result[grow] = numeric.Clamp(reconciled, neighbour.MinSize, neighbour.MaxSize)
	}

	return numeric.RoundAll(result)
}

var _ Algorithm = Distribute
