package chain

import "fmt"

// Link connects consecutive edges of every line through Prev/Next and closes
// loops. It first clears all existing links, so calling it twice is harmless.
//
// Behavior:
//   - Adjacent edges with the same non-zero LineID are linked both ways.
//   - At the end of each line (including the last line of the slice) the line
//     is closed when its last End equals its first Start and it has at least
//     two edges.
//   - SingletonLine edges are never linked.
//
// Complexity: O(n) time, O(1) extra memory.
func Link(edges []Edge) {
	for i := range edges {
		edges[i].Prev, edges[i].Next = NoEdge, NoEdge
	}
	first := 0
	for i := range edges {
		id := edges[i].LineID
		if id == SingletonLine {
			continue
		}
		if i == 0 || edges[i-1].LineID != id {
			first = i
		}
		if i+1 < len(edges) && edges[i+1].LineID == id {
			edges[i].Next = i + 1
			edges[i+1].Prev = i
			continue
		}
		// i is the last edge of its line
		if i != first && edges[i].End == edges[first].Start {
			edges[i].Next = first
			edges[first].Prev = i
		}
	}
}

// Lines returns the contiguous spans of non-singleton lines in slice order.
// It expects a slice produced by Build (lines contiguous); Closed is derived
// from the endpoints, not from links.
//
// Complexity: O(n).
func Lines(edges []Edge) []Line {
	var out []Line
	for i := 0; i < len(edges); {
		id := edges[i].LineID
		j := i
		for j+1 < len(edges) && edges[j+1].LineID == id {
			j++
		}
		if id != SingletonLine {
			out = append(out, Line{
				ID:     id,
				First:  i,
				Last:   j,
				Closed: j > i && edges[j].End == edges[i].Start,
			})
		}
		i = j + 1
	}

	return out
}

// CheckContinuity verifies that every edge's End equals the Start of its Next.
// It returns ErrBrokenChain wrapped with the offending index otherwise.
//
// Complexity: O(n).
func CheckContinuity(edges []Edge) error {
	for i, e := range edges {
		if e.Next == NoEdge {
			continue
		}
		if e.Next < 0 || e.Next >= len(edges) || edges[e.Next].Start != e.End {
			return fmt.Errorf("%w: edge %d -> %d", ErrBrokenChain, i, e.Next)
		}
	}

	return nil
}
