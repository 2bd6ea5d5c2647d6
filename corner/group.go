package corner

import "github.com/katalvlaran/navedge/chain"

// Group collects corner regions line by line. IDs are assigned in emission
// order starting at 0, so Corner.ID is also the index in the returned slice.
//
// A closed line whose edges are all Corner is a small wrapped obstacle and is
// split by edge length (see groupByLength). On every other line a group
// starts at a Corner whose predecessor is absent or not a Corner and extends
// through Next while the edges stay Corner; an Entry directly after the run
// is included and ends the group.
//
// Complexity: O(n).
func Group(edges []chain.Edge, smallObstacleLength float64) []Corner {
	var out []Corner
	for _, line := range chain.Lines(edges) {
		if isWrappedObstacle(edges, line) {
			out = groupByLength(out, edges, line, smallObstacleLength)
			continue
		}
		for i := line.First; i <= line.Last; i++ {
			e := edges[i]
			if e.Type != chain.Corner {
				continue
			}
			if e.Prev != chain.NoEdge && edges[e.Prev].Type == chain.Corner {
				continue
			}
			out = append(out, Corner{ID: len(out), StartEdge: i, EndEdge: runEnd(edges, i)})
		}
	}

	return out
}

// runEnd walks forward from the corner at start and returns the last edge of its run.
func runEnd(edges []chain.Edge, start int) int {
	j := start
	for {
		n := edges[j].Next
		if n == chain.NoEdge || n == start {
			return j
		}
		switch edges[n].Type {
		case chain.Corner:
			j = n
		case chain.Entry:
			return n
		default:
			return j
		}
	}
}

// isWrappedObstacle reports whether line is a linked loop made only of Corners.
func isWrappedObstacle(edges []chain.Edge, line chain.Line) bool {
	if edges[line.Last].Next != line.First {
		return false
	}
	for i := line.First; i <= line.Last; i++ {
		if edges[i].Type != chain.Corner {
			return false
		}
	}

	return true
}

// groupByLength splits an all-corner loop into runs of edges shorter than limit.
//
// It first walks back from the line's first edge while the predecessor is
// short, so a run that wraps past the first edge is not cut in two, then
// walks one lap forward emitting one Corner per maximal short run. Edges of
// length >= limit belong to no group.
func groupByLength(out []Corner, edges []chain.Edge, line chain.Line, limit float64) []Corner {
	n := line.Len()
	start := line.First
	for k := 0; k < n; k++ {
		p := edges[start].Prev
		if edges[p].Length() >= limit {
			break
		}
		start = p
	}

	runStart, runLast := chain.NoEdge, chain.NoEdge
	j := start
	for k := 0; k < n; k++ {
		if edges[j].Length() < limit {
			if runStart == chain.NoEdge {
				runStart = j
			}
			runLast = j
		} else if runStart != chain.NoEdge {
			out = append(out, Corner{ID: len(out), StartEdge: runStart, EndEdge: runLast})
			runStart = chain.NoEdge
		}
		j = edges[j].Next
	}
	if runStart != chain.NoEdge {
		out = append(out, Corner{ID: len(out), StartEdge: runStart, EndEdge: runLast})
	}

	return out
}

// Members returns the edge indices of c in walking order, from StartEdge to
// EndEdge inclusive. It stops after one lap if EndEdge is never reached.
func Members(edges []chain.Edge, c Corner) []int {
	var out []int
	j := c.StartEdge
	for {
		out = append(out, j)
		if j == c.EndEdge {
			return out
		}
		j = edges[j].Next
		if j == chain.NoEdge || j == c.StartEdge {
			return out
		}
	}
}
