package corner_test

import (
	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/geom"
)

// polyline builds and links a line through pts; closed adds the edge back to pts[0].
func polyline(closed bool, pts ...geom.Vec3) []chain.Edge {
	var segs []geom.Segment
	for i := 0; i+1 < len(pts); i++ {
		segs = append(segs, geom.Segment{Start: pts[i], End: pts[i+1]})
	}
	if closed {
		segs = append(segs, geom.Segment{Start: pts[len(pts)-1], End: pts[0]})
	}
	edges := chain.Build(segs)
	chain.Link(edges)

	return edges
}

// rawLine lays out pts as one line without going through chain.Build,
// so degenerate edges survive.
func rawLine(pts ...geom.Vec3) []chain.Edge {
	edges := make([]chain.Edge, 0, len(pts)-1)
	for i := 0; i+1 < len(pts); i++ {
		edges = append(edges, chain.Edge{
			Start: pts[i], End: pts[i+1],
			EdgeID: i, LineID: 1,
			Prev: chain.NoEdge, Next: chain.NoEdge,
		})
	}
	chain.Link(edges)

	return edges
}

func p(x, y float64) geom.Vec3 { return geom.V(x, y, 0) }

func types(edges []chain.Edge) []chain.WallType {
	out := make([]chain.WallType, len(edges))
	for i, e := range edges {
		out[i] = e.Type
	}

	return out
}

const (
	W = chain.Wall
	F = chain.FakeCorner
	C = chain.Corner
	E = chain.Entry
)
