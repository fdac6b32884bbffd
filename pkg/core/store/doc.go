// Package store holds the authoritative layout of a panel group and applies
// drags and imperative changes to it.
//
// A [Store] is mutated in exactly three ways:
//
//   - [Store.SetConfig] installs a freshly resolved layout after the panel
//     set changed
//   - [Store.ApplyDelta] runs the resize algorithm for one pointer-move event
//   - the imperative calls [Store.SetLayout], [Store.Collapse],
//     [Store.Expand] and [Store.ExpandTo]
//
// # Gestures
//
// A drag takes one [Store.Snapshot] when it starts and passes it, with the
// cumulative delta, to every [Store.ApplyDelta] call:
//
//	start := s.Snapshot()
//	for _, d := range cumulativeDeltas {
//	    s.ApplyDelta("sidebar", d, start)
//	}
//
// Stopping a gesture needs no rollback; simply stop calling ApplyDelta.
//
// # Observers
//
// [Store.Subscribe], [Store.Watch] and [Select] notify only when the observed
// value actually changed, so a UI layer can bind to them without diffing.
package store
