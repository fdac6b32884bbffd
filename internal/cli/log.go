// Package cli implements the panels command-line interface.
//
// The commands read a panel group declaration, resolve it, and optionally
// replay an operation on it before printing the resulting layout. The CLI
// is built using cobra and logs via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - resolve: Resolve one or more declaration files
//   - drag: Replay a handle drag as a sequence of pointer moves
//   - collapse, expand: Collapse or expand a collapsible panel
//   - set: Replace every size at once
//   - tui: Interactive terminal view with mouse resizing
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. In verbose
// mode every resolve, distribution and gesture is logged through the
// observability hooks.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panels/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Resolved 3 files (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// =============================================================================
// Debug Hooks
// =============================================================================

// logHooks reports engine and gesture events at debug level.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.EngineHooks  = logHooks{}
	_ observability.GestureHooks = logHooks{}
)

func (h logHooks) OnResolve(panels, warnings int, d time.Duration) {
	h.logger.Debug("resolved layout", "panels", panels, "warnings", warnings, "took", d)
}

func (h logHooks) OnDistribute(pivot string, delta float64, changed bool, d time.Duration) {
	h.logger.Debug("distributed", "pivot", pivot, "delta", delta, "changed", changed, "took", d)
}

func (h logHooks) OnReject(op string, err error) {
	h.logger.Debug("rejected", "op", op, "err", err)
}

func (h logHooks) OnGestureStart(pivot string, panels int) {
	h.logger.Debug("gesture started", "pivot", pivot, "panels", panels)
}

func (h logHooks) OnGestureEnd(pivot string, moves int, d time.Duration) {
	h.logger.Debug("gesture ended", "pivot", pivot, "moves", moves, "took", d)
}

// installLogHooks routes every hook to l.
func installLogHooks(l *log.Logger) {
	h := logHooks{logger: l}
	observability.SetEngineHooks(h)
	observability.SetGestureHooks(h)
}
