package store

import (
	"time"

	"github.com/matzehuels/panels/pkg/core/layout"
	"github.com/matzehuels/panels/pkg/core/numeric"
	"github.com/matzehuels/panels/pkg/observability"
)

// handle is one way of moving a panel: the pivot and delta handed to the
// algorithm, and the layout view it runs against.
type handle struct {
	pivot int
	delta float64
	view  layout.Layout
}

// Collapse drives the panel to 0, or to its minimum when it is not
// collapsible.
//
// Only the target gives up space: the handle after the panel is tried first
// and the handle before it second, and the other panels on the shrinking
// side stay where they are. If neither neighbour has room for everything,
// the best partial result is committed. Unknown ids and panels already at
// their floor are ignored.
func (s *Store) Collapse(id string) {
	began := time.Now()

	s.mu.Lock()
	idx := s.panels.Index(id)
	if idx < 0 || len(s.panels) < 2 {
		s.mu.Unlock()
		return
	}
	p := s.panels[idx]
	goal := p.MinSize
	if p.Collapsible {
		goal = 0
	}
	if p.Size <= goal || numeric.IsZero(p.Size-goal) {
		s.mu.Unlock()
		return
	}
	amount := p.Size - goal
	start := s.panels.Sizes()

	var handles []handle
	if idx < len(s.panels)-1 {
		handles = append(handles, handle{idx, -amount, pinned(s.panels, start, func(i int) bool { return i < idx })})
	}
	if idx > 0 {
		handles = append(handles, handle{idx - 1, amount, pinned(s.panels, start, func(i int) bool { return i > idx })})
	}

	best := start
	for _, h := range handles {
		sizes := s.algorithm(h.view, start, h.pivot, h.delta)
		if len(sizes) == len(start) && sizes[idx] < best[idx] {
			best = sizes
		}
		if numeric.IsZero(best[idx] - goal) {
			break
		}
	}
	prev, next, changed := s.commitLocked(best)
	s.mu.Unlock()

	observability.Engine().OnDistribute(id, -amount, changed, time.Since(began))
	if changed {
		s.notify(prev, next)
	}
}

// Expand reveals a collapsed panel at its maximum size.
func (s *Store) Expand(id string) {
	s.expand(id, nil)
}

// ExpandTo reveals a collapsed panel at target, replaced by the nearest
// bound when it lies outside [MinSize, MaxSize].
func (s *Store) ExpandTo(id string, target float64) {
	s.expand(id, &target)
}

// expand only acts on collapsed panels. Siblings shrink toward their floors
// but are never collapsed to make room.
func (s *Store) expand(id string, target *float64) {
	began := time.Now()

	s.mu.Lock()
	idx := s.panels.Index(id)
	if idx < 0 || len(s.panels) < 2 || !s.panels[idx].Collapsed() {
		s.mu.Unlock()
		return
	}
	p := s.panels[idx]
	goal := p.MaxSize
	if target != nil {
		goal = numeric.Clamp(*target, p.MinSize, p.MaxSize)
	}
	start := s.panels.Sizes()

	view := s.panels.Clone()
	for i := range view {
		if i != idx {
			view[i].Collapsible = false
		}
	}

	handles := []handle{{idx, goal, view}}
	if idx > 0 && idx < len(s.panels)-1 {
		handles = append(handles, handle{idx - 1, -goal, view})
	}

	best := start
	for _, h := range handles {
		sizes := s.algorithm(h.view, start, h.pivot, h.delta)
		if len(sizes) == len(start) && sizes[idx] > best[idx] {
			best = sizes
		}
		if numeric.IsZero(best[idx] - goal) {
			break
		}
	}
	prev, next, changed := s.commitLocked(best)
	s.mu.Unlock()

	observability.Engine().OnDistribute(id, goal, changed, time.Since(began))
	if changed {
		s.notify(prev, next)
	}
}

// pinned returns a view of panels in which every panel selected by pin is
// fixed at its current size.
func pinned(panels layout.Layout, start []float64, pin func(int) bool) layout.Layout {
	view := panels.Clone()
	for i := range view {
		if pin(i) {
			view[i].MinSize = start[i]
			view[i].MaxSize = start[i]
			view[i].Collapsible = false
		}
	}
	return view
}
