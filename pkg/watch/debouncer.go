package watch

import (
	"sync"
	"time"
)

// DefaultDebounce is the default quiet period before a reload.
const DefaultDebounce = 150 * time.Millisecond

// Debouncer coalesces bursts of events into one callback. Editors usually
// produce several writes (or a write, a rename and a create) per save.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a debouncer. A zero duration uses [DefaultDebounce].
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDebounce
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback after the quiet period, replacing any callback
// scheduled earlier that has not run yet.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A timer that fired while being stopped must not run a stale callback.
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			callback()
		}
	})
}

// Cancel drops the pending callback, if any.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the quiet period.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
