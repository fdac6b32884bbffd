// Package gesture converts pointer input into the cumulative budget deltas
// consumed by the panel store.
//
// A drag is tracked from pointer-down to pointer-up. Every move reports the
// offset from the pointer-down position, never the per-event increment, so
// replaying or dropping intermediate events cannot change where the drag
// ends up:
//
//	t := gesture.NewTracker(gesture.Row, gesture.NoCorrection)
//	t.Begin(down)
//	px := t.Move(current)                 // cumulative, corrected pixels
//	delta := gesture.ToBudget(px, extent) // budget units
package gesture
