// Package watch reloads a panel declaration whenever its file changes.
//
// The directory containing the file is watched rather than the file itself,
// so editors that save by writing a temporary file and renaming it over the
// original are picked up as well. Bursts of events are coalesced by a
// [Debouncer] before the file is read again.
//
//	w, err := watch.New("panels.toml", func(d *io.Declaration) {
//	    g.SetSpecs(d.Specs())
//	})
//	if err != nil {
//	    return err
//	}
//	return w.Run(ctx)
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/matzehuels/panels/pkg/core/layout"
	pio "github.com/matzehuels/panels/pkg/io"
)

// Watcher re-reads one declaration file on change.
type Watcher struct {
	path      string
	fs        *fsnotify.Watcher
	debouncer *Debouncer
	logger    layout.Logger
	onChange  func(*pio.Declaration)
	onError   func(error)
}

// Option configures a [Watcher].
type Option func(*Watcher)

// WithDebounce sets the quiet period between the last event and the reload.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debouncer = NewDebouncer(d) }
}

// WithLogger sets the logger used for watch and reload failures.
func WithLogger(l layout.Logger) Option {
	return func(w *Watcher) { w.logger = l }
}

// WithErrorHandler registers a callback for files that fail to load. The
// previous declaration stays in effect.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// New starts watching path. onChange is called, from the watcher's own
// goroutine, with every successfully re-read declaration once [Watcher.Run]
// is running.
func New(path string, onChange func(*pio.Declaration), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	w := &Watcher{
		path:      abs,
		debouncer: NewDebouncer(0),
		onChange:  onChange,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.logger = layout.DefaultLogger(w.logger)

	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fs.Add(filepath.Dir(abs)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	w.fs = fs
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Run delivers reloads until ctx is cancelled, then releases the underlying
// watcher. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fs.Close()
	defer w.debouncer.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if w.relevant(ev) {
				w.debouncer.Trigger(w.reload)
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watch error", "path", w.path, "err", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename)
}

func (w *Watcher) reload() {
	d, err := pio.ReadFile(w.path)
	if err != nil {
		w.logger.Warn("reload failed, keeping previous layout", "path", w.path, "err", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	if w.onChange != nil {
		w.onChange(d)
	}
}
