package awareness

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
)

// Snapshot is one published analysis. It is never mutated after publication.
type Snapshot struct {
	ID         uuid.UUID `json:"id"`
	Generation uint64    `json:"generation"`
	Origin     geom.Vec3 `json:"origin"`
	Radius     float64   `json:"radius"`
	BuiltAt    time.Time `json:"built_at"`
	Result
}

// Input is a single analysis request.
type Input struct {
	Origin   geom.Vec3
	Radius   float64
	Segments []geom.Segment
	// Locator is the interior locator for Segments. Nil disables the
	// inner-edge filter; the Analyzer's own locator is never substituted.
	Locator corner.InteriorLocator
}

// Analyzer owns the published snapshot of one agent's surroundings.
// It is safe for concurrent use.
type Analyzer struct {
	cfg     Config
	source  BoundarySource
	locator corner.InteriorLocator
	logger  *log.Logger
	now     func() time.Time

	generation atomic.Uint64
	latest     atomic.Pointer[Snapshot]
}

// NewAnalyzer applies opts over DefaultConfig and validates the resulting config.
func NewAnalyzer(opts ...Option) (*Analyzer, error) {
	a := &Analyzer{
		cfg:    DefaultConfig(),
		logger: discardLogger(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// Config returns the analyzer's configuration.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Latest returns the most recent published snapshot, or nil before the first one.
func (a *Analyzer) Latest() *Snapshot {
	return a.latest.Load()
}

// Rebuild queries the source within SearchRadius of origin and analyzes the
// result with the locator configured by WithLocator. On error the published
// snapshot is left unchanged.
func (a *Analyzer) Rebuild(ctx context.Context, origin geom.Vec3) (*Snapshot, error) {
	if a.source == nil {
		return nil, ErrNilSource
	}
	segs, err := a.source.FindEdges(ctx, origin, a.cfg.SearchRadius)
	if err != nil {
		return nil, fmt.Errorf("awareness: query boundary at %v: %w", origin, err)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w: origin %v radius %v", ErrNoBoundaryData, origin, a.cfg.SearchRadius)
	}

	return a.Analyze(Input{
		Origin:   origin,
		Radius:   a.cfg.SearchRadius,
		Segments: segs,
		Locator:  a.locator,
	}), nil
}

// Analyze runs the pipeline on in with in.Locator and tries to publish the
// result. The snapshot is returned even when a newer one is already published.
func (a *Analyzer) Analyze(in Input) *Snapshot {
	gen := a.generation.Add(1)
	snap := &Snapshot{
		ID:         uuid.New(),
		Generation: gen,
		Origin:     in.Origin,
		Radius:     in.Radius,
		Result:     Run(in.Segments, a.cfg, in.Locator),
	}
	snap.BuiltAt = a.now()

	if a.publish(snap) {
		counts := snap.Counts()
		a.logger.Printf("awareness: snapshot %s gen=%d lines=%d edges=%d corners=%d entries=%d (corner=%d fake=%d entry=%d)",
			snap.ID, gen, len(snap.Lines), len(snap.Edges), len(snap.Corners), len(snap.Entries),
			counts[chain.Corner], counts[chain.FakeCorner], counts[chain.Entry])
	} else {
		a.logger.Printf("awareness: snapshot %s gen=%d superseded", snap.ID, gen)
	}

	return snap
}

// publish installs snap unless a later generation is already visible.
func (a *Analyzer) publish(snap *Snapshot) bool {
	for {
		cur := a.latest.Load()
		if cur != nil && cur.Generation > snap.Generation {
			return false
		}
		if a.latest.CompareAndSwap(cur, snap) {
			return true
		}
	}
}
