// Package layout defines the panel data model and the resolver that turns
// sparse panel declarations into a dense, fully bounded layout.
//
// # Overview
//
// A panel group shares a fixed budget of [Total] (100, i.e. percent of the
// container extent) between an ordered list of panels. Panels are declared
// as [Spec] values, usually through the two constructors:
//
//	specs := []layout.Spec{
//	    layout.Collapsible("sidebar", 10, layout.WithSize(25)),
//	    layout.Fixed("editor", layout.WithMinSize(30)),
//	    layout.Fixed("preview"),
//	}
//
// [Resolve] fills in everything that was left out:
//
//	l := layout.Resolve(specs, logger)
//	l.Sizes() // [25 37.5 37.5]
//
// # Invariants
//
// After every mutation performed by the store:
//
//   - the sizes sum to [Total] (within rounding tolerance)
//   - each size lies in [MinSize, MaxSize]
//   - a collapsible panel may additionally sit at exactly 0 (collapsed)
//
// [Resolve] itself does not enforce the bounds: a declaration that violates
// them is reported through the [Logger] and kept as-is.
//
// # Rendering
//
// [Apportion] converts a size vector into whole cells for a given extent,
// which is what a terminal renderer needs.
package layout
