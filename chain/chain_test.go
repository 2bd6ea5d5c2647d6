package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/geom"
)

// unitSquare returns a counter-clockwise unit square.
func unitSquare() []geom.Segment {
	return []geom.Segment{
		geom.Seg(0, 0, 1, 0),
		geom.Seg(1, 0, 1, 1),
		geom.Seg(1, 1, 0, 1),
		geom.Seg(0, 1, 0, 0),
	}
}

// permutations returns every ordering of segs.
func permutations(segs []geom.Segment) [][]geom.Segment {
	if len(segs) <= 1 {
		return [][]geom.Segment{append([]geom.Segment(nil), segs...)}
	}
	var out [][]geom.Segment
	for i := range segs {
		rest := make([]geom.Segment, 0, len(segs)-1)
		rest = append(rest, segs[:i]...)
		rest = append(rest, segs[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]geom.Segment{segs[i]}, p...))
		}
	}

	return out
}

func buildLinked(segs []geom.Segment) []chain.Edge {
	edges := chain.Build(segs)
	chain.Link(edges)

	return edges
}

func TestBuild_Empty(t *testing.T) {
	assert.Empty(t, chain.Build(nil))
	edges := chain.Build([]geom.Segment{})
	assert.Empty(t, edges)
	chain.Link(edges)
	assert.Empty(t, chain.Lines(edges))
	assert.NoError(t, chain.CheckContinuity(edges))
}

// TestBuild_Singleton verifies that an isolated segment lands in line 0 without links.
func TestBuild_Singleton(t *testing.T) {
	edges := buildLinked([]geom.Segment{geom.Seg(0, 0, 3, 0)})
	require.Len(t, edges, 1)
	assert.Equal(t, chain.SingletonLine, edges[0].LineID)
	assert.Equal(t, 0, edges[0].EdgeID)
	assert.Equal(t, chain.NoEdge, edges[0].Prev)
	assert.Equal(t, chain.NoEdge, edges[0].Next)
	assert.Equal(t, chain.Wall, edges[0].Type)
	assert.Empty(t, chain.Lines(edges))
}

// TestBuild_UnitSquareAnyOrder feeds all 24 orderings of a square.
func TestBuild_UnitSquareAnyOrder(t *testing.T) {
	for _, perm := range permutations(unitSquare()) {
		edges := buildLinked(perm)
		require.Len(t, edges, 4)

		lines := chain.Lines(edges)
		require.Len(t, lines, 1)
		assert.Equal(t, chain.Line{ID: 1, First: 0, Last: 3, Closed: true}, lines[0])
		assert.NoError(t, chain.CheckContinuity(edges))

		for i, e := range edges {
			assert.Equal(t, 1, e.LineID)
			assert.Equal(t, i, e.EdgeID)
			assert.Equal(t, unitSquare()[i], e.Segment(), "edge %d", i)
			assert.Equal(t, (i+1)%4, e.Next, "edge %d next", i)
			assert.Equal(t, (i+3)%4, e.Prev, "edge %d prev", i)
		}
	}
}

// TestBuild_LoopStartCanonical checks that a closed loop starts at the edge
// with the smallest Start whichever of its segments is seen first.
func TestBuild_LoopStartCanonical(t *testing.T) {
	loop := []geom.Segment{
		geom.Seg(0, 0, 200, 0),
		geom.Seg(200, 0, 200, 5),
		geom.Seg(200, 5, 400, 5),
		geom.Seg(400, 5, 400, 400),
		geom.Seg(400, 400, 0, 400),
		geom.Seg(0, 400, 0, 0),
	}
	tests := []struct {
		name  string
		order []int
	}{
		{"as drawn", []int{0, 1, 2, 3, 4, 5}},
		{"seeded mid loop", []int{3, 4, 5, 0, 1, 2}},
		{"seeded at last edge", []int{5, 0, 1, 2, 3, 4}},
		{"reversed", []int{5, 4, 3, 2, 1, 0}},
		{"interleaved", []int{2, 5, 1, 4, 0, 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			segs := make([]geom.Segment, 0, len(loop))
			for _, i := range tc.order {
				segs = append(segs, loop[i])
			}
			edges := buildLinked(segs)
			require.Len(t, edges, len(loop))
			for i, e := range edges {
				assert.Equal(t, loop[i], e.Segment(), "edge %d", i)
			}
			assert.Equal(t, 5, edges[0].Prev)
		})
	}
}

// TestBuild_OpenLineNotRotated checks that only closed loops are rotated.
func TestBuild_OpenLineNotRotated(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(5, 0, 0, 0),
		geom.Seg(0, 0, 0, 5),
	}
	edges := buildLinked(segs)
	require.Len(t, edges, 2)
	assert.Equal(t, segs[0], edges[0].Segment())
	assert.Equal(t, segs[1], edges[1].Segment())
}

// TestBuild_HeadExtension checks that segments preceding the seed are prepended.
func TestBuild_HeadExtension(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(1, 0, 2, 0),
		geom.Seg(3, 0, 4, 0),
		geom.Seg(0, 0, 1, 0),
		geom.Seg(2, 0, 3, 0),
	}
	edges := buildLinked(segs)
	require.Len(t, edges, 4)
	for i, e := range edges {
		assert.Equal(t, float64(i), e.Start.X, "edge %d start", i)
		assert.Equal(t, i, e.EdgeID)
		assert.Equal(t, 1, e.LineID)
	}
	assert.Equal(t, chain.NoEdge, edges[0].Prev)
	assert.Equal(t, chain.NoEdge, edges[3].Next)
	lines := chain.Lines(edges)
	require.Len(t, lines, 1)
	assert.False(t, lines[0].Closed)
	assert.Equal(t, 4, lines[0].Len())
}

// TestBuild_SingletonsFirst verifies singletons move to the front regardless of discovery order.
func TestBuild_SingletonsFirst(t *testing.T) {
	segs := append(unitSquare()[:2], geom.Seg(10, 10, 11, 10))
	segs = append(segs, unitSquare()[2:]...)
	segs = append(segs, geom.Seg(20, 0, 20, 5))

	edges := buildLinked(segs)
	require.Len(t, edges, 6)
	assert.Equal(t, chain.SingletonLine, edges[0].LineID)
	assert.Equal(t, chain.SingletonLine, edges[1].LineID)
	assert.Equal(t, 0, edges[0].EdgeID)
	assert.Equal(t, 1, edges[1].EdgeID)
	for _, e := range edges[2:] {
		assert.Equal(t, 1, e.LineID)
	}
	assert.Equal(t, 2, edges[5].Next, "square must close onto its first edge")
	assert.Equal(t, chain.NoEdge, edges[0].Next)
	assert.Equal(t, chain.NoEdge, edges[1].Prev)
}

// TestBuild_TwoEdgeLineAfterSingleton seeds a short line after a singleton seed.
func TestBuild_TwoEdgeLineAfterSingleton(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(5, 5, 6, 5),
		geom.Seg(1, 0, 1, 1),
		geom.Seg(0, 0, 1, 0),
	}
	edges := buildLinked(segs)
	require.Len(t, edges, 3)
	assert.Equal(t, chain.SingletonLine, edges[0].LineID)
	assert.Equal(t, geom.Seg(0, 0, 1, 0), edges[1].Segment())
	assert.Equal(t, geom.Seg(1, 0, 1, 1), edges[2].Segment())
	assert.Equal(t, 1, edges[1].LineID)
	assert.Equal(t, 1, edges[2].LineID)
	assert.Equal(t, 2, edges[1].Next)
	assert.Equal(t, 1, edges[2].Prev)
}

// TestBuild_MultipleLines numbers lines in discovery order.
func TestBuild_MultipleLines(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(0, 0, 1, 0), geom.Seg(1, 0, 2, 0),
		geom.Seg(10, 0, 11, 0), geom.Seg(11, 0, 12, 1),
	}
	edges := buildLinked(segs)
	lines := chain.Lines(edges)
	require.Len(t, lines, 2)
	assert.Equal(t, 1, lines[0].ID)
	assert.Equal(t, 2, lines[1].ID)
	assert.Equal(t, chain.NoEdge, edges[1].Next, "lines must not link across a boundary")
	assert.Equal(t, chain.NoEdge, edges[2].Prev)
	assert.NoError(t, chain.CheckContinuity(edges))
}

// TestBuild_Duplicates keeps one copy of repeated geometry.
func TestBuild_Duplicates(t *testing.T) {
	segs := []geom.Segment{
		geom.Seg(0, 0, 1, 0),
		geom.Seg(0, 0, 1, 0),
		geom.Seg(1, 0, 2, 0),
	}
	edges := buildLinked(segs)
	require.Len(t, edges, 2)
	assert.NoError(t, chain.CheckContinuity(edges))
}

// TestBuild_ZeroLength ensures degenerate segments do not break the builder.
func TestBuild_ZeroLength(t *testing.T) {
	edges := buildLinked([]geom.Segment{geom.Seg(3, 3, 3, 3), geom.Seg(7, 0, 8, 0)})
	require.Len(t, edges, 2)
	for _, e := range edges {
		assert.Equal(t, chain.SingletonLine, e.LineID)
	}
}

// TestLink_Idempotent re-links an already linked slice.
func TestLink_Idempotent(t *testing.T) {
	edges := buildLinked(unitSquare())
	before := append([]chain.Edge(nil), edges...)
	chain.Link(edges)
	assert.Equal(t, before, edges)
}

// TestCheckContinuity_Broken detects a corrupted link.
func TestCheckContinuity_Broken(t *testing.T) {
	edges := buildLinked(unitSquare())
	edges[0].Next = 2
	assert.ErrorIs(t, chain.CheckContinuity(edges), chain.ErrBrokenChain)
	edges[0].Next = 99
	assert.ErrorIs(t, chain.CheckContinuity(edges), chain.ErrBrokenChain)
}

// TestWallType_Text round-trips the text form used in JSON output.
func TestWallType_Text(t *testing.T) {
	for _, wt := range []chain.WallType{chain.Wall, chain.FakeCorner, chain.Corner, chain.Entry} {
		b, err := wt.MarshalText()
		require.NoError(t, err)
		var back chain.WallType
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, wt, back)
		assert.Equal(t, string(b), wt.String())
	}
	var bad chain.WallType
	assert.Error(t, bad.UnmarshalText([]byte("Door")))
	_, err := chain.WallType(9).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "WallType(9)", chain.WallType(9).String())
}
