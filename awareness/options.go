package awareness

import (
	"io"
	"log"
	"time"

	"github.com/katalvlaran/navedge/corner"
)

// Option configures an Analyzer. Use with NewAnalyzer(opts...).
type Option func(*Analyzer)

// WithConfig replaces DefaultConfig. NewAnalyzer validates it.
func WithConfig(cfg Config) Option {
	return func(a *Analyzer) {
		a.cfg = cfg
	}
}

// WithSource sets the boundary source queried by Rebuild.
func WithSource(src BoundarySource) Option {
	return func(a *Analyzer) {
		a.source = src
	}
}

// WithLocator sets the interior locator Rebuild uses for source data; nil
// disables the inner-edge filter there. Analyze only uses Input.Locator.
func WithLocator(loc corner.InteriorLocator) Option {
	return func(a *Analyzer) {
		a.locator = loc
	}
}

// WithLogger routes rebuild summaries to l. Passing nil has no effect.
func WithLogger(l *log.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock overrides time.Now for Snapshot.BuiltAt. Passing nil has no effect.
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		if now != nil {
			a.now = now
		}
	}
}

// discardLogger is the default: summaries are dropped.
func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}
