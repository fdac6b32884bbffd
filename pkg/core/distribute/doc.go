// Package distribute implements the size-distribution algorithm that turns a
// handle drag into a new, constraint-satisfying size vector.
//
// # Model
//
// A drag is described by four values:
//
//   - the resolved layout (bounds and collapsibility of every panel)
//   - the sizes captured when the gesture started
//   - the pivot: the index of the panel immediately before the handle
//   - the cumulative delta, in budget units, since the gesture started
//
// Because the delta is cumulative and the snapshot never changes during a
// gesture, every pointer-move event recomputes the layout from scratch. Two
// events carrying the same delta produce the same sizes, and rounding error
// does not accumulate over a long drag.
//
// # Example
//
//	panels := layout.Resolve(specs, logger)
//	start := panels.Sizes()              // [50 50]
//	next := distribute.Distribute(panels, start, 0, 10)
//	// next == [60 40]
//
// # Guarantees
//
// For any layout whose start sizes sum to [layout.Total] and respect their
// bounds, [Distribute] returns sizes that still sum to [layout.Total] (within
// [numeric.Tolerance]) and still respect their bounds, with collapsible
// panels additionally allowed to sit at zero.
//
// [numeric.Tolerance]: github.com/matzehuels/panels/pkg/core/numeric.Tolerance
package distribute
