package awareness

import (
	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
	"github.com/katalvlaran/navedge/passage"
)

// Result is the output of one pipeline run. Corners and Entries index into Edges.
type Result struct {
	Edges   []chain.Edge    `json:"edges"`
	Lines   []chain.Line    `json:"lines"`
	Corners []corner.Corner `json:"corners"`
	Entries []passage.Entry `json:"entries"`
	// Clusters lists lines reachable from each other through entries.
	Clusters [][]int `json:"clusters"`
}

// Run executes every stage on segments with the thresholds of cfg.
// loc may be nil, in which case the inner-edge filter is skipped.
// cfg is used as given; call Validate first for untrusted input.
//
// Complexity: O(n) for chaining and classification, O(k·n log n) for
// passage resolution over k corner edges.
func Run(segments []geom.Segment, cfg Config, loc corner.InteriorLocator) Result {
	copts := cfg.CornerOptions()

	// 1. Topology.
	edges := chain.Build(segments)
	chain.Link(edges)

	// 2. Classification.
	corner.Classify(edges, copts)
	corner.FilterInner(edges, loc)
	corner.MarkEntries(edges, copts.CornerBlurDistance)

	// 3. Regions and passages.
	corners := corner.Group(edges, copts.SmallObstacleLength)
	entries := passage.Resolve(edges, corners, cfg.PassageOptions())
	lines := chain.Lines(edges)
	g := passage.NewGraph(entries)
	for _, l := range lines {
		g.AddLine(l.ID)
	}

	return Result{
		Edges:    edges,
		Lines:    lines,
		Corners:  corners,
		Entries:  entries,
		Clusters: g.Components(),
	}
}

// Counts tallies edges by classification.
func (r Result) Counts() map[chain.WallType]int {
	out := make(map[chain.WallType]int, 4)
	for _, e := range r.Edges {
		out[e.Type]++
	}

	return out
}
