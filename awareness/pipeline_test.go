package awareness_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navedge/awareness"
	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
)

func TestRun_Empty(t *testing.T) {
	res := awareness.Run(nil, awareness.DefaultConfig(), nil)
	assert.Empty(t, res.Edges)
	assert.Empty(t, res.Lines)
	assert.Empty(t, res.Corners)
	assert.Empty(t, res.Entries)
}

func TestRun_UnitSquare(t *testing.T) {
	res := awareness.Run(square(0, 0), awareness.DefaultConfig(), nil)
	require.Len(t, res.Lines, 1)
	assert.True(t, res.Lines[0].Closed)
	assert.Equal(t, 4, res.Lines[0].Len())
	assert.Equal(t, 4, res.Counts()[chain.Corner])
	require.Len(t, res.Corners, 1)
	assert.Empty(t, res.Entries)
	assert.Equal(t, [][]int{{1}}, res.Clusters)
	require.NoError(t, chain.CheckContinuity(res.Edges))
}

func TestRun_IsolatedSegment(t *testing.T) {
	res := awareness.Run([]geom.Segment{geom.Seg(0, 0, 10, 0)}, awareness.DefaultConfig(), nil)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, chain.SingletonLine, res.Edges[0].LineID)
	assert.Equal(t, chain.Wall, res.Edges[0].Type)
	assert.Empty(t, res.Lines)
	assert.Empty(t, res.Corners)
	assert.Empty(t, res.Entries)
}

func TestRun_TwoSquares(t *testing.T) {
	res := awareness.Run(scene(), awareness.DefaultConfig(), nil)
	require.Len(t, res.Entries, 2)
	for _, e := range res.Entries {
		assert.InDelta(t, 5, e.Width, 1e-9)
	}
	assert.Equal(t, [][]int{{1, 2}}, res.Clusters)
}

// TestRun_InteriorLocator downgrades every corner bending toward the locator point.
func TestRun_InteriorLocator(t *testing.T) {
	loc := corner.PointLocator{Point: geom.V(0.5, 0.5, 0)}
	res := awareness.Run(square(0, 0), awareness.DefaultConfig(), loc)
	assert.Zero(t, res.Counts()[chain.Corner])
	assert.Empty(t, res.Corners)
}

// signature is an order-independent description of a classified edge.
type signature struct {
	start, end geom.Vec3
	typ        chain.WallType
	singleton  bool
}

func signatures(res awareness.Result) []signature {
	out := make([]signature, len(res.Edges))
	for i, e := range res.Edges {
		out[i] = signature{e.Start, e.End, e.Type, e.LineID == chain.SingletonLine}
	}
	sort.Slice(out, func(a, b int) bool {
		pa, pb := out[a], out[b]
		if pa.start.X != pb.start.X {
			return pa.start.X < pb.start.X
		}
		if pa.start.Y != pb.start.Y {
			return pa.start.Y < pb.start.Y
		}
		if pa.end.X != pb.end.X {
			return pa.end.X < pb.end.X
		}

		return pa.end.Y < pb.end.Y
	})

	return out
}

func widths(res awareness.Result) []float64 {
	out := make([]float64, len(res.Entries))
	for i, e := range res.Entries {
		out[i] = e.Width
	}
	sort.Float64s(out)

	return out
}

// TestRun_OrderInsensitive shuffles the input and expects the same
// classification and passages up to relabelling.
func TestRun_OrderInsensitive(t *testing.T) {
	cfg := awareness.DefaultConfig()
	base := mixedScene()
	want := awareness.Run(base, cfg, nil)
	require.Len(t, want.Lines, 4)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		segs := append([]geom.Segment(nil), base...)
		rng.Shuffle(len(segs), func(a, b int) { segs[a], segs[b] = segs[b], segs[a] })

		got := awareness.Run(segs, cfg, nil)
		require.NoError(t, chain.CheckContinuity(got.Edges))
		assert.Equal(t, signatures(want), signatures(got), "shuffle %d", i)
		assert.Len(t, got.Lines, len(want.Lines))
		assert.Len(t, got.Corners, len(want.Corners))
		assert.Equal(t, widths(want), widths(got), "shuffle %d", i)
		assert.Len(t, got.Clusters, len(want.Clusters))
	}
}

// TestRun_NotchedLoopOrderInsensitive feeds every rotation and a set of
// shuffles of one loop. The step pair must come out as FakeCorner whichever
// segment seeds the loop.
func TestRun_NotchedLoopOrderInsensitive(t *testing.T) {
	cfg := awareness.DefaultConfig()
	base := notchedLoop()
	want := awareness.Run(base, cfg, nil)
	require.Len(t, want.Lines, 1)
	assert.Equal(t, 2, want.Counts()[chain.FakeCorner])
	assert.Equal(t, 4, want.Counts()[chain.Corner])
	assert.Equal(t, chain.FakeCorner, want.Edges[0].Type)
	assert.Equal(t, chain.FakeCorner, want.Edges[1].Type)

	var orders [][]geom.Segment
	for k := range base {
		orders = append(orders, append(append([]geom.Segment(nil), base[k:]...), base[:k]...))
	}
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		segs := append([]geom.Segment(nil), base...)
		rng.Shuffle(len(segs), func(a, b int) { segs[a], segs[b] = segs[b], segs[a] })
		orders = append(orders, segs)
	}
	for i, segs := range orders {
		got := awareness.Run(segs, cfg, nil)
		assert.Equal(t, signatures(want), signatures(got), "order %d", i)
		assert.Equal(t, want.Counts(), got.Counts(), "order %d", i)
		assert.Len(t, got.Corners, len(want.Corners), "order %d", i)
	}
}

// TestRun_Invariants checks the structural guarantees on the mixed scene.
func TestRun_Invariants(t *testing.T) {
	res := awareness.Run(mixedScene(), awareness.DefaultConfig(), nil)

	for i, e := range res.Edges {
		if e.Type == chain.FakeCorner {
			paired := (e.Prev != chain.NoEdge && res.Edges[e.Prev].Type == chain.FakeCorner) ||
				(e.Next != chain.NoEdge && res.Edges[e.Next].Type == chain.FakeCorner)
			assert.True(t, paired, "fake corner %d without partner", i)
		}
	}
	for _, c := range res.Corners {
		line := res.Edges[c.StartEdge].LineID
		assert.Equal(t, line, res.Edges[c.EndEdge].LineID)
		for _, m := range corner.Members(res.Edges, c) {
			assert.Equal(t, line, res.Edges[m].LineID)
		}
	}
	for _, e := range res.Entries {
		assert.GreaterOrEqual(t, e.Width, 0.0)
	}
}
