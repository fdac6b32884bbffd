package gesture

import "github.com/matzehuels/panels/pkg/core/layout"

// Point is a pointer position in raw (uncorrected) coordinates.
type Point struct {
	X, Y float64
}

// Correction compensates for an ambient zoom and scale between the pointer
// coordinates and the laid-out extent. Zero values count as 1.
type Correction struct {
	Zoom  float64
	Scale float64
}

// NoCorrection leaves coordinates untouched.
var NoCorrection = Correction{Zoom: 1, Scale: 1}

func (c Correction) factor() float64 {
	zoom, scale := c.Zoom, c.Scale
	if zoom == 0 {
		zoom = 1
	}
	if scale == 0 {
		scale = 1
	}
	return zoom * scale
}

// Apply converts a raw coordinate into a corrected one.
func (c Correction) Apply(v float64) float64 {
	return v / c.factor()
}

// Tracker turns pointer positions into the cumulative main-axis offset from
// the position where the gesture began. It is owned by a single gesture and
// is not safe for concurrent use.
type Tracker struct {
	direction  Direction
	correction Correction
	origin     Point
	active     bool
}

// NewTracker returns an idle tracker.
func NewTracker(d Direction, c Correction) *Tracker {
	return &Tracker{direction: d, correction: c}
}

// Begin records the pointer-down position.
func (t *Tracker) Begin(p Point) {
	t.origin = Point{X: t.correction.Apply(p.X), Y: t.correction.Apply(p.Y)}
	t.active = true
}

// Move returns the offset, in corrected pixels, between p and the position
// passed to [Tracker.Begin]. The sign follows the direction: positive means
// toward the end of the group, so reverse directions flip it. An idle
// tracker returns 0.
func (t *Tracker) Move(p Point) float64 {
	if !t.active {
		return 0
	}
	delta := t.correction.Apply(t.direction.Axis(p)) - t.direction.Axis(t.origin)
	if t.direction.IsReverse() {
		delta = -delta
	}
	return delta
}

// End stops tracking; later moves return 0.
func (t *Tracker) End() {
	t.active = false
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool {
	return t.active
}

// SetCorrection changes the zoom and scale. The recorded origin is converted
// to the new correction so an in-flight gesture keeps a consistent offset.
func (t *Tracker) SetCorrection(c Correction) {
	prev := t.correction.factor()
	t.correction = c
	t.origin = Point{
		X: c.Apply(t.origin.X * prev),
		Y: c.Apply(t.origin.Y * prev),
	}
}

// Extent returns the main-axis extent of a group as the sum of its panels'
// extents; handles and gaps between panels do not count.
func Extent(panelExtents ...float64) float64 {
	var total float64
	for _, e := range panelExtents {
		total += e
	}
	return total
}

// ToBudget converts a pixel offset into budget units for a container of the
// given extent. A non-positive extent yields 0.
func ToBudget(deltaPX, extentPX float64) float64 {
	if extentPX <= 0 {
		return 0
	}
	return deltaPX * layout.Total / extentPX
}
