package corner

import "github.com/katalvlaran/navedge/chain"

// MarkEntries reclassifies Wall edges that sit next to corners.
//
// Only edges on non-singleton lines whose Type is Wall are considered.
// FakeCorner edges are never rewritten, even next to a Corner, so fake pairs
// stay intact. A FakeCorner neighbour does not count as a Corner either.
//
// For each Wall edge:
//   - exactly one Corner neighbour: the edge becomes Entry;
//   - two Corner neighbours: if the distance from the edge midpoint to the
//     previous neighbour's midpoint plus the distance to the next
//     neighbour's midpoint is at most blurDistance, the edge becomes Corner
//     (the three edges read as one wide corner); otherwise Entry.
//
// Every decision is taken against the classification as it was before the
// call, so the result does not depend on scan order.
//
// Complexity: O(n) time, O(k) memory for k changed edges.
func MarkEntries(edges []chain.Edge, blurDistance float64) {
	type change struct {
		index int
		typ   chain.WallType
	}
	var changes []change
	for i := range edges {
		e := &edges[i]
		if e.LineID == chain.SingletonLine || e.Type != chain.Wall {
			continue
		}
		corners, dist := 0, 0.0
		mid := e.Midpoint()
		for _, n := range neighbours(e) {
			if edges[n].Type == chain.Corner {
				corners++
				dist += mid.Dist2D(edges[n].Midpoint())
			}
		}
		switch {
		case corners == 1:
			changes = append(changes, change{i, chain.Entry})
		case corners == 2 && dist <= blurDistance:
			changes = append(changes, change{i, chain.Corner})
		case corners == 2:
			changes = append(changes, change{i, chain.Entry})
		}
	}
	for _, c := range changes {
		edges[c.index].Type = c.typ
	}
}

// neighbours returns the distinct linked neighbours of e.
func neighbours(e *chain.Edge) []int {
	out := make([]int, 0, 2)
	if e.Prev != chain.NoEdge {
		out = append(out, e.Prev)
	}
	if e.Next != chain.NoEdge && e.Next != e.Prev {
		out = append(out, e.Next)
	}

	return out
}
