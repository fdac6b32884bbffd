package layout

import (
	"slices"

	"github.com/matzehuels/panels/pkg/errors"
)

// Total is the size budget shared by all panels of a group: sizes are
// percentages of the container's main-axis extent.
const Total = 100.0

// Spec is a panel as declared at registration time. Nil fields are resolved
// by [Resolve]: Size takes an even share of the unclaimed budget, MinSize
// defaults to 0 and MaxSize to [Total].
//
// Build specs with [Fixed] or [Collapsible]; a collapsible panel always needs
// an explicit minimum, otherwise "collapsed" and "shrunk to the floor" would
// be the same state.
type Spec struct {
	ID          string
	Size        *float64
	MinSize     *float64
	MaxSize     *float64
	Collapsible bool
}

// Option customizes a [Spec] built by [Fixed] or [Collapsible].
type Option func(*Spec)

// WithSize sets the initial size.
func WithSize(v float64) Option { return func(s *Spec) { s.Size = &v } }

// WithMinSize sets the lower bound.
func WithMinSize(v float64) Option { return func(s *Spec) { s.MinSize = &v } }

// WithMaxSize sets the upper bound.
func WithMaxSize(v float64) Option { return func(s *Spec) { s.MaxSize = &v } }

// Fixed declares a panel that can never shrink below its minimum.
func Fixed(id string, opts ...Option) Spec {
	s := Spec{ID: id}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Collapsible declares a panel that snaps to zero once a drag pushes it past
// minSize.
func Collapsible(id string, minSize float64, opts ...Option) Spec {
	s := Spec{ID: id, MinSize: &minSize, Collapsible: true}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate checks the spec for values that cannot be resolved.
// Sizes outside the declared bounds are not an error here; [Resolve] reports
// them as warnings and keeps them.
func (s Spec) Validate() error {
	if err := errors.ValidatePanelID(s.ID); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{{"size", s.Size}, {"min_size", s.MinSize}, {"max_size", s.MaxSize}} {
		if f.v == nil {
			continue
		}
		if err := errors.ValidateSize(f.name, *f.v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpec, err, "panel %q", s.ID)
		}
	}
	if s.MinSize != nil && s.MaxSize != nil && *s.MinSize > *s.MaxSize {
		return errors.New(errors.ErrCodeInvalidSpec,
			"panel %q: min_size %v exceeds max_size %v", s.ID, *s.MinSize, *s.MaxSize)
	}
	if s.Collapsible && s.MinSize == nil {
		return errors.New(errors.ErrCodeInvalidSpec,
			"panel %q: collapsible panels need an explicit min_size", s.ID)
	}
	return nil
}

// Panel is a fully resolved panel: every bound is known and Size is the
// current share of [Total].
type Panel struct {
	ID          string
	Size        float64
	MinSize     float64
	MaxSize     float64
	Collapsible bool
}

// Collapsed reports whether the panel sits in its collapsed state.
func (p Panel) Collapsed() bool {
	return p.Collapsible && p.Size == 0
}

// Allows reports whether size is a legal value for this panel: inside
// [MinSize, MaxSize], or exactly zero for a collapsible panel.
func (p Panel) Allows(size float64) bool {
	if p.Collapsible && size == 0 {
		return true
	}
	return size >= p.MinSize && size <= p.MaxSize
}

// Layout is an ordered sequence of resolved panels with unique ids.
type Layout []Panel

// Sizes returns the size vector of the layout.
func (l Layout) Sizes() []float64 {
	sizes := make([]float64, len(l))
	for i, p := range l {
		sizes[i] = p.Size
	}
	return sizes
}

// IDs returns the panel ids in order.
func (l Layout) IDs() []string {
	ids := make([]string, len(l))
	for i, p := range l {
		ids[i] = p.ID
	}
	return ids
}

// Index returns the position of the panel with the given id, or -1.
func (l Layout) Index(id string) int {
	return slices.IndexFunc(l, func(p Panel) bool { return p.ID == id })
}

// Sum returns the total of all sizes.
func (l Layout) Sum() float64 {
	var total float64
	for _, p := range l {
		total += p.Size
	}
	return total
}

// Clone returns an independent copy of the layout.
func (l Layout) Clone() Layout {
	return slices.Clone(l)
}

// WithSizes returns a copy of the layout with sizes applied in order.
// sizes must have the same length as the layout.
func (l Layout) WithSizes(sizes []float64) Layout {
	out := l.Clone()
	for i := range out {
		out[i].Size = sizes[i]
	}
	return out
}
