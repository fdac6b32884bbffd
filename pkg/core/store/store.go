package store

import (
	"slices"
	"sync"
	"time"

	"github.com/matzehuels/panels/pkg/core/distribute"
	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/core/numeric"
	"github.com/matzehuels/panels/pkg/errors"
	"github.com/matzehuels/panels/pkg/observability"
)

// Store holds the authoritative layout of one panel group.
//
// All methods are safe for concurrent use. Listeners registered with
// [Store.Subscribe], [Store.Watch] or [Select] run after the store's lock has
// been released, on the goroutine that performed the mutation.
type Store struct {
	mu        sync.RWMutex
	panels    layout.Layout
	algorithm distribute.Algorithm
	logger    layout.Logger

	listenerMu sync.Mutex
	listeners  []listener
	nextID     uint64
}

// Option configures a [Store].
type Option func(*Store)

// WithAlgorithm replaces [distribute.Distribute] as the resize algorithm.
func WithAlgorithm(a distribute.Algorithm) Option {
	return func(s *Store) {
		if a != nil {
			s.algorithm = a
		}
	}
}

// WithLogger sets the diagnostic sink for rejected imperative calls.
func WithLogger(l layout.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a store holding a copy of panels.
func New(panels layout.Layout, opts ...Option) *Store {
	s := &Store{
		panels:    panels.Clone(),
		algorithm: distribute.Distribute,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = layout.DefaultLogger(s.logger)
	return s
}

// SetConfig replaces the layout wholesale, typically with a freshly resolved
// one after panels were registered or removed. The resize algorithm is not
// involved.
func (s *Store) SetConfig(panels layout.Layout) {
	s.mu.Lock()
	prev := s.panels
	s.panels = panels.Clone()
	next := s.panels
	s.mu.Unlock()

	s.notify(prev, next)
}

// ApplyDelta runs the resize algorithm for the handle after pivotID and
// commits the result.
//
// start must be the snapshot taken when the gesture began and delta the
// cumulative change since then. An unknown pivot is ignored, as is a
// snapshot whose length no longer matches the layout: both mean the panel
// set changed while the gesture was in flight.
func (s *Store) ApplyDelta(pivotID string, delta float64, start []float64) {
	began := time.Now()

	s.mu.Lock()
	idx := s.panels.Index(pivotID)
	if idx < 0 || len(start) != len(s.panels) {
		s.mu.Unlock()
		return
	}
	sizes := s.algorithm(s.panels, start, idx, delta)
	prev, next, changed := s.commitLocked(sizes)
	s.mu.Unlock()

	observability.Engine().OnDistribute(pivotID, delta, changed, time.Since(began))
	if changed {
		s.notify(prev, next)
	}
}

// Layout returns the current size vector.
func (s *Store) Layout() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panels.Sizes()
}

// Snapshot captures the sizes at the start of a gesture. Pass the same
// snapshot to every [Store.ApplyDelta] call of that gesture.
func (s *Store) Snapshot() []float64 {
	return s.Layout()
}

// Panels returns a copy of the resolved layout.
func (s *Store) Panels() layout.Layout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.panels.Clone()
}

// Size returns the current size of the panel with the given id.
func (s *Store) Size(id string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.panels.Index(id); i >= 0 {
		return s.panels[i].Size, true
	}
	return 0, false
}

// Len returns the number of panels.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.panels)
}

// SetLayout replaces every size at once.
//
// The call is rejected without any mutation when the length does not match
// the panel count, when the sizes do not sum to [layout.Total], or when a
// size is outside its panel's bounds (collapsible panels also accept 0).
// Rejections are logged on the store's logger and returned as
// *errors.Error with one of the LAYOUT_* codes.
func (s *Store) SetLayout(sizes []float64) error {
	s.mu.Lock()
	if err := validateLayout(s.panels, sizes); err != nil {
		s.mu.Unlock()
		s.logger.Warn("layout rejected", "err", errors.UserMessage(err), "code", errors.GetCode(err))
		observability.Engine().OnReject("set_layout", err)
		return err
	}
	prev, next, changed := s.commitLocked(numeric.RoundAll(slices.Clone(sizes)))
	s.mu.Unlock()

	if changed {
		s.notify(prev, next)
	}
	return nil
}

func validateLayout(panels layout.Layout, sizes []float64) error {
	if len(sizes) != len(panels) {
		return errors.New(errors.ErrCodeLengthMismatch,
			"got %d sizes for %d panels", len(sizes), len(panels))
	}
	if sum := numeric.Sum(sizes); !numeric.Equal(sum, layout.Total, numeric.Tolerance) {
		return errors.New(errors.ErrCodeSumMismatch,
			"sizes sum to %v, want %v", numeric.Round(sum), layout.Total)
	}
	for i, p := range panels {
		if !p.Allows(sizes[i]) {
			return errors.New(errors.ErrCodeOutOfBounds,
				"panel %q: size %v outside [%v, %v]", p.ID, sizes[i], p.MinSize, p.MaxSize)
		}
	}
	return nil
}

// commitLocked installs sizes and reports whether anything changed. A vector
// of the wrong length is dropped. The previous layout slice is never
// modified, so it can be handed to listeners.
func (s *Store) commitLocked(sizes []float64) (prev, next layout.Layout, changed bool) {
	prev = s.panels
	if len(sizes) != len(prev) || slices.Equal(prev.Sizes(), sizes) {
		return prev, prev, false
	}
	s.panels = prev.WithSizes(sizes)
	return prev, s.panels, true
}
