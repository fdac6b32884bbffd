package store

import (
	"slices"

	"github.com/matzehuels/panels/pkg/core/layout"
)

type listener struct {
	id uint64
	fn func(prev, next layout.Layout)
}

// subscribe registers fn for every committed change and returns a function
// that removes it.
func (s *Store) subscribe(fn func(prev, next layout.Layout)) func() {
	s.listenerMu.Lock()
	s.nextID++
	id := s.nextID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.listenerMu.Unlock()

	return func() {
		s.listenerMu.Lock()
		defer s.listenerMu.Unlock()
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool { return l.id == id })
	}
}

// notify calls every listener in registration order. It must be called
// without holding s.mu.
func (s *Store) notify(prev, next layout.Layout) {
	s.listenerMu.Lock()
	listeners := slices.Clone(s.listeners)
	s.listenerMu.Unlock()

	for _, l := range listeners {
		l.fn(prev, next)
	}
}

// Subscribe calls fn with the previous and current size vectors whenever at
// least one size changes value. Structural changes through
// [Store.SetConfig] are reported the same way. It returns a function that
// cancels the subscription.
func (s *Store) Subscribe(fn func(prev, next []float64)) func() {
	return s.subscribe(func(prev, next layout.Layout) {
		p, n := prev.Sizes(), next.Sizes()
		if !slices.Equal(p, n) {
			fn(p, n)
		}
	})
}

// Watch calls fn whenever the size of the panel with the given id changes
// value. Changes in which the panel is missing from either side (it was just
// registered or removed) are not reported.
func (s *Store) Watch(id string, fn func(prev, next float64)) func() {
	type reading struct {
		size float64
		ok   bool
	}
	read := func(l layout.Layout) reading {
		if i := l.Index(id); i >= 0 {
			return reading{size: l[i].Size, ok: true}
		}
		return reading{}
	}
	return Select(s, read, func(prev, next reading) {
		if prev.ok && next.ok {
			fn(prev.size, next.size)
		}
	})
}

// Select is the generic subscribe-with-selector primitive: fn is called
// with the old and new selected values whenever selector yields a different
// value after a change.
//
//	unsubscribe := store.Select(s, func(l layout.Layout) bool {
//	    return l[0].Collapsed()
//	}, func(was, is bool) { ... })
func Select[T comparable](s *Store, selector func(layout.Layout) T, fn func(prev, next T)) func() {
	return s.subscribe(func(prev, next layout.Layout) {
		p, n := selector(prev), selector(next)
		if p != n {
			fn(p, n)
		}
	})
}
