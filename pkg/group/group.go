// Package group wires the resolver, the panel store and the gesture tracker
// into a single controller for one row or column of panels.
//
// A [Group] is what a UI layer holds on to: panels register and unregister
// themselves, read their size, start drags on their handles, and subscribe
// to collapse and expand transitions. Application code uses the same object
// for the imperative calls.
//
//	g := group.New(group.WithDirection(gesture.Row), group.WithExtent(width))
//	g.RegisterPanel(layout.Collapsible("sidebar", 10, layout.WithSize(25)))
//	g.RegisterPanel(layout.Fixed("editor"))
//
//	r := g.BeginResize("sidebar", down)
//	r.Move(p1)
//	r.Move(p2)
//	r.End()
package group

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/matzehuels/panels/pkg/core/distribute"
	"github.com/matzehuels/panels/pkg/core/gesture"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/core/store"
	"github.com/matzehuels/panels/pkg/errors"
)

// Group is the layout controller of one panel group. It is safe for
// concurrent use.
//
// Callbacks run synchronously on the goroutine that caused the change. They
// may read sizes but must not register or unregister panels.
type Group struct {
	mu         sync.Mutex
	specs      []layout.Spec
	direction  gesture.Direction
	correction gesture.Correction

	store     *store.Store
	algorithm distribute.Algorithm
	logger    layout.Logger
	extent    func() float64
	onChange  func(sizes []float64)
}

// Option configures a [Group].
type Option func(*Group)

// WithDirection sets the main axis. Defaults to [gesture.Row].
func WithDirection(d gesture.Direction) Option {
	return func(g *Group) { g.direction = d }
}

// WithCorrection sets the zoom and scale applied to pointer coordinates.
func WithCorrection(c gesture.Correction) Option {
	return func(g *Group) { g.correction = c }
}

// WithAlgorithm replaces the resize algorithm.
func WithAlgorithm(a distribute.Algorithm) Option {
	return func(g *Group) { g.algorithm = a }
}

// WithLogger sets the diagnostic sink for resolver warnings and rejected
// layouts.
func WithLogger(l layout.Logger) Option {
	return func(g *Group) { g.logger = l }
}

// WithExtent sets the function measuring the container's main-axis extent
// in pixels (see [gesture.Extent]). It is called once per gesture. Without
// it, pointer offsets are taken to be budget units already.
func WithExtent(fn func() float64) Option {
	return func(g *Group) { g.extent = fn }
}

// WithOnLayoutChange registers a callback for every size change.
func WithOnLayoutChange(fn func(sizes []float64)) Option {
	return func(g *Group) { g.onChange = fn }
}

// New creates an empty group.
func New(opts ...Option) *Group {
	g := &Group{
		direction:  gesture.Row,
		correction: gesture.NoCorrection,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.extent == nil {
		g.extent = func() float64 { return layout.Total }
	}
	g.logger = layout.DefaultLogger(g.logger)
	g.store = store.New(nil, store.WithAlgorithm(g.algorithm), store.WithLogger(g.logger))
	if g.onChange != nil {
		fn := g.onChange
		g.store.Subscribe(func(_, next []float64) { fn(next) })
	}
	return g
}

// Direction returns the group's main axis.
func (g *Group) Direction() gesture.Direction {
	return g.direction
}

// SetCorrection changes the zoom and scale used by gestures started from now
// on.
func (g *Group) SetCorrection(c gesture.Correction) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.correction = c
}

// Store exposes the underlying panel store.
func (g *Group) Store() *store.Store {
	return g.store
}

// =============================================================================
// Registration
// =============================================================================

// RegisterPanel appends a panel and re-resolves the layout. A spec without
// an id gets a generated one; the id actually used is returned.
func (g *Group) RegisterPanel(spec layout.Spec) (string, error) {
	return g.RegisterPanelAt(spec, -1)
}

// RegisterPanelAt inserts a panel at index, or appends it when index is out
// of range, and re-resolves the layout.
func (g *Group) RegisterPanelAt(spec layout.Spec, index int) (string, error) {
	if spec.ID == "" {
		spec.ID = uuid.NewString()
	}
	if err := spec.Validate(); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if slices.ContainsFunc(g.specs, func(s layout.Spec) bool { return s.ID == spec.ID }) {
		return "", errors.New(errors.ErrCodeDuplicatePanel, "panel %q is already registered", spec.ID)
	}
	if index < 0 || index > len(g.specs) {
		index = len(g.specs)
	}
	g.specs = slices.Insert(g.specs, index, spec)
	g.resolveLocked()
	return spec.ID, nil
}

// UnregisterPanel removes a panel and re-resolves the layout.
func (g *Group) UnregisterPanel(id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	i := slices.IndexFunc(g.specs, func(s layout.Spec) bool { return s.ID == id })
	if i < 0 {
		return errors.New(errors.ErrCodeUnknownPanel, "panel %q is not registered", id)
	}
	g.specs = slices.Delete(g.specs, i, i+1)
	g.resolveLocked()
	return nil
}

// SetSpecs replaces every panel at once. Either all specs are accepted or
// none are.
func (g *Group) SetSpecs(specs []layout.Spec) error {
	seen := make(map[string]bool, len(specs))
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return err
		}
		if seen[s.ID] {
			return errors.New(errors.ErrCodeDuplicatePanel, "panel %q is declared twice", s.ID)
		}
		seen[s.ID] = true
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.specs = slices.Clone(specs)
	g.resolveLocked()
	return nil
}

// Specs returns the registered specs in order.
func (g *Group) Specs() []layout.Spec {
	g.mu.Lock()
	defer g.mu.Unlock()
	return slices.Clone(g.specs)
}

func (g *Group) resolveLocked() {
	g.store.SetConfig(layout.Resolve(g.specs, g.logger))
}

// =============================================================================
// Sizes and imperative API
// =============================================================================

// Size returns the current size of a panel.
func (g *Group) Size(id string) (float64, bool) {
	return g.store.Size(id)
}

// Sizes returns the current size vector.
func (g *Group) Sizes() []float64 {
	return g.store.Layout()
}

// Panels returns the resolved panels with their current sizes.
func (g *Group) Panels() layout.Layout {
	return g.store.Panels()
}

// Layout is an alias for [Group.Sizes].
func (g *Group) Layout() []float64 {
	return g.store.Layout()
}

// SetLayout replaces every size at once; see [store.Store.SetLayout].
func (g *Group) SetLayout(sizes []float64) error {
	return g.store.SetLayout(sizes)
}

// Collapse collapses a panel, or shrinks it to its minimum.
func (g *Group) Collapse(id string) {
	g.store.Collapse(id)
}

// Expand reveals a collapsed panel at its maximum size.
func (g *Group) Expand(id string) {
	g.store.Expand(id)
}

// ExpandTo reveals a collapsed panel at the given size.
func (g *Group) ExpandTo(id string, size float64) {
	g.store.ExpandTo(id, size)
}

// =============================================================================
// Collapse callbacks
// =============================================================================

type panelState struct {
	present   bool
	collapsed bool
}

func (g *Group) watchCollapsed(id string, fn func(prev, next panelState)) func() {
	return store.Select(g.store, func(l layout.Layout) panelState {
		if i := l.Index(id); i >= 0 {
			return panelState{present: true, collapsed: l[i].Collapsed()}
		}
		return panelState{}
	}, func(prev, next panelState) {
		if prev.present && next.present {
			fn(prev, next)
		}
	})
}

// OnCollapse calls fn each time the panel goes from open to collapsed. It
// returns a function that removes the callback.
func (g *Group) OnCollapse(id string, fn func()) func() {
	return g.watchCollapsed(id, func(prev, next panelState) {
		if !prev.collapsed && next.collapsed {
			fn()
		}
	})
}

// OnExpand calls fn each time the panel goes from collapsed to open. It
// returns a function that removes the callback.
func (g *Group) OnExpand(id string, fn func()) func() {
	return g.watchCollapsed(id, func(prev, next panelState) {
		if prev.collapsed && !next.collapsed {
			fn()
		}
	})
}
