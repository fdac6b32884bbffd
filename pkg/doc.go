// Package pkg provides the libraries behind panels, a size-distribution
// engine for groups of resizable panels.
//
// # Overview
//
// A panel group is an ordered row (or column) of panels whose sizes are
// percentages that always add up to 100. Between consecutive panels sits a
// handle; dragging it moves space from one side of the handle to the other
// while every panel stays within its declared bounds. The pkg directory is
// organized into four main areas:
//
//  1. [core] - Domain logic (resolution, distribution, the store, gestures)
//  2. [group] - The layout controller that ties the core together
//  3. [io] and [watch] - Declaration files and live reloading
//  4. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow through panels:
//
//	Declaration file (TOML, YAML, JSON)
//	         ↓
//	    [io] package (decode, assign ids, validate)
//	         ↓
//	    [core/layout] package (resolve specs into a dense layout)
//	         ↓
//	    [core/store] package (authoritative sizes, imperative API)
//	         ↑
//	    [core/distribute] package (one handle drag → new sizes)
//	         ↑
//	    [core/gesture] package (pointer positions → budget delta)
//
// # Quick Start
//
// Declare a group and drag its first handle:
//
//	import (
//	    "github.com/matzehuels/panels/pkg/core/gesture"
//	    "github.com/matzehuels/panels/pkg/core/layout"
//	    "github.com/matzehuels/panels/pkg/group"
//	)
//
//	g := group.New(group.WithExtent(func() float64 { return 800 }))
//	g.RegisterPanel(layout.Collapsible("sidebar", 10, layout.WithSize(25)))
//	g.RegisterPanel(layout.Fixed("editor"))
//
//	r := g.BeginResize("sidebar", gesture.Point{X: 200})
//	r.Move(gesture.Point{X: 280}) // 80px of 800px → +10
//	r.End()
//
//	g.Sizes() // [35 65]
//
// # Main Packages
//
// ## Core Domain Logic
//
// [core/numeric] - Rounding to four decimals, clamping and tolerant
// comparison. Every size that leaves the engine is rounded.
//
// [core/layout] - Panel specs, resolved panels and the resolver that splits
// the undeclared share evenly. [layout.Apportion] maps sizes onto whole cells.
//
// [core/distribute] - The distribution algorithm: grow one side of a handle,
// shrink (and collapse) the other side outward from it.
//
// [core/store] - The mutable layout behind a mutex: gestures, collapse and
// expand, validated bulk updates and change subscriptions.
//
// [core/gesture] - Directions, zoom and scale correction, and the pointer
// tracker that keeps gesture deltas cumulative.
//
// ## Controller
//
// [group] - Panel registration, size reads, the gesture entry point and
// per-panel collapse callbacks.
//
// ## Files
//
// [io] - Declaration files and layout export.
//
// [watch] - fsnotify watcher with a debouncer that re-reads a declaration.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/core/distribute/...    # Specific package
//	go test -run Example                 # Examples only
//
// [core]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core
// [core/numeric]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/numeric
// [core/layout]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/layout
// [core/distribute]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/distribute
// [core/store]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/store
// [core/gesture]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/gesture
// [layout.Apportion]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/core/layout#Apportion
// [group]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/group
// [io]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/io
// [watch]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/watch
// [errors]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/panels/pkg/buildinfo
package pkg
