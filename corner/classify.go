package corner

import (
	"math"

	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/geom"
)

// Classify computes TurnDegree for every linked edge and marks Corner and
// FakeCorner edges. Existing Type and TurnDegree values are reset first.
//
// An edge is a candidate when |TurnDegree| > CornerAngle. A candidate and its
// predecessor both become FakeCorner when all of these hold:
//   - the edge is no longer than FakeCornerMaxLength;
//   - the predecessor on the same line has a non-zero turn (so the edge is
//     not the first edge of its line);
//   - |previous turn + current turn| < FakeCornerCompensation;
//   - the predecessor is not already FakeCorner.
//
// Otherwise the candidate is a Corner. The predecessor is tracked per line in
// slice order, so compensation never crosses a line boundary or the
// wrap-around edge of a closed loop.
//
// Complexity: O(n).
func Classify(edges []chain.Edge, opts Options) {
	prev := chain.NoEdge
	for i := range edges {
		e := &edges[i]
		e.Type = chain.Wall
		e.TurnDegree = 0
		if e.LineID == chain.SingletonLine {
			continue
		}
		if i == 0 || edges[i-1].LineID != e.LineID {
			prev = chain.NoEdge
		}
		if e.Next != chain.NoEdge {
			e.TurnDegree = geom.XYDegrees(e.Dir(), edges[e.Next].Dir())
			if math.Abs(e.TurnDegree) > opts.CornerAngle {
				if prev != chain.NoEdge && isFakeCorner(e, &edges[prev], opts) {
					e.Type = chain.FakeCorner
					edges[prev].Type = chain.FakeCorner
				} else {
					e.Type = chain.Corner
				}
			}
		}
		prev = i
	}
}

// isFakeCorner applies the fake-corner test to cur given its predecessor.
func isFakeCorner(cur, prev *chain.Edge, opts Options) bool {
	if cur.Length() > opts.FakeCornerMaxLength {
		return false
	}
	if prev.TurnDegree == 0 || prev.Type == chain.FakeCorner {
		return false
	}

	return compensates(prev.TurnDegree, cur.TurnDegree, opts.FakeCornerCompensation)
}

// compensates reports whether two turns add up to less than limit degrees.
func compensates(prevDeg, curDeg, limit float64) bool {
	return math.Abs(prevDeg+curDeg) < limit
}
