package group

import (
	"time"

	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/observability"
)

// Resize is one drag of the handle after a panel, from pointer-down to
// pointer-up. It is not safe for concurrent use; a pointer delivers its
// events in order.
type Resize struct {
	group   *Group
	pivot   string
	start   []float64
	extent  float64
	tracker *gesture.Tracker
	began   time.Time
	moves   int
	done    bool
}

// BeginResize starts a drag of the handle after panelID at the pointer
// position p. The current sizes and the container extent are captured once
// and used for the whole drag.
func (g *Group) BeginResize(panelID string, p gesture.Point) *Resize {
	g.mu.Lock()
	correction := g.correction
	g.mu.Unlock()

	tracker := gesture.NewTracker(g.direction, correction)
	tracker.Begin(p)
	r := &Resize{
		group:   g,
		pivot:   panelID,
		start:   g.store.Snapshot(),
		extent:  g.extent(),
		tracker: tracker,
		began:   time.Now(),
	}
	observability.Gesture().OnGestureStart(panelID, len(r.start))
	return r
}

// Move applies the pointer position p. The delta handed to the store is
// always measured from the pointer-down position.
func (r *Resize) Move(p gesture.Point) {
	if r.done {
		return
	}
	delta := gesture.ToBudget(r.tracker.Move(p), r.extent)
	r.group.store.ApplyDelta(r.pivot, delta, r.start)
	r.moves++
}

// SetCorrection updates the zoom and scale while the drag is in flight.
func (r *Resize) SetCorrection(c gesture.Correction) {
	r.tracker.SetCorrection(c)
}

// End finishes the drag. Further moves are ignored.
func (r *Resize) End() {
	if r.done {
		return
	}
	r.done = true
	r.tracker.End()
	observability.Gesture().OnGestureEnd(r.pivot, r.moves, time.Since(r.began))
}

// Pivot returns the id of the panel before the dragged handle.
func (r *Resize) Pivot() string {
	return r.pivot
}
