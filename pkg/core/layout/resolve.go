package layout

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panels/pkg/core/numeric"
	"github.com/matzehuels/panels/pkg/observability"
)

// Logger is the diagnostic sink used for non-fatal problems. A
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Warn(msg interface{}, keyvals ...interface{})
	Error(msg interface{}, keyvals ...interface{})
}

// DefaultLogger returns logger, or the charmbracelet default logger when
// logger is nil.
func DefaultLogger(logger Logger) Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}

// Resolve turns declared specs into a dense layout.
//
// The explicit sizes are summed, and whatever is left of [Total] is split
// evenly (rounded to [numeric.Precision] digits) between the specs that did
// not declare a size. Missing bounds default to 0 and [Total].
//
// A resolved size outside its bounds is reported to logger and kept as
// declared; a later drag pulls it back into range. A collapsible panel
// declared at exactly zero starts collapsed and is not reported.
//
// Resolve has no hidden state: the same specs always yield the same layout.
func Resolve(specs []Spec, logger Logger) Layout {
	start := time.Now()
	logger = DefaultLogger(logger)

	var spent float64
	unsized := 0
	for _, s := range specs {
		if s.Size != nil {
			spent += *s.Size
		} else {
			unsized++
		}
	}

	var share float64
	if unsized > 0 {
		share = numeric.Round((Total - spent) / float64(unsized))
	}

	out := make(Layout, len(specs))
	warnings := 0
	for i, s := range specs {
		p := Panel{
			ID:          s.ID,
			Size:        share,
			MinSize:     0,
			MaxSize:     Total,
			Collapsible: s.Collapsible,
		}
		if s.Size != nil {
			p.Size = *s.Size
		}
		if s.MinSize != nil {
			p.MinSize = *s.MinSize
		}
		if s.MaxSize != nil {
			p.MaxSize = *s.MaxSize
		}

		if !p.Allows(p.Size) {
			warnings++
			reportBounds(logger, p)
		}
		out[i] = p
	}

	observability.Engine().OnResolve(len(out), warnings, time.Since(start))
	return out
}

func reportBounds(logger Logger, p Panel) {
	if p.Size < p.MinSize {
		logger.Warn("panel size is below its minimum",
			"id", p.ID, "size", p.Size, "min_size", p.MinSize)
		return
	}
	logger.Warn("panel size is above its maximum",
		"id", p.ID, "size", p.Size, "max_size", p.MaxSize)
}
