package passage

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/navedge/bfs"
	"github.com/katalvlaran/navedge/core"
)

// Graph is the undirected adjacency between boundary lines induced by entries:
// two lines are adjacent when some entry connects them in either direction.
// Each entry becomes one core edge weighted by its width.
type Graph struct {
	entries []Entry
	lines   *core.Graph
	entryOf map[string]int // core edge ID → index in entries
}

// NewGraph indexes entries. Lines without entries can be added with AddLine.
// An entry whose width is negative or not finite is left out.
//
// Complexity: O(m) for m entries.
func NewGraph(entries []Entry) *Graph {
	g := &Graph{
		entries: entries,
		lines:   core.NewGraph(core.WithMultiEdges(), core.WithLoops()),
		entryOf: make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		eid, err := g.lines.AddEdge(lineKey(e.SourceLine), lineKey(e.TargetLine), e.Width)
		if err != nil {
			continue
		}
		g.entryOf[eid] = i
	}

	return g
}

func lineKey(line int) string { return strconv.Itoa(line) }

// toLines converts vertex IDs back to line numbers, sorted ascending.
func toLines(ids []string) []int {
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil {
			out = append(out, n)
		}
	}
	sort.Ints(out)

	return out
}

// AddLine registers line as a vertex; existing lines are left unchanged.
func (g *Graph) AddLine(line int) {
	_ = g.lines.AddVertex(lineKey(line))
}

// Lines returns every registered line in ascending order.
func (g *Graph) Lines() []int {
	return toLines(g.lines.Vertices())
}

// Neighbors returns the lines adjacent to line in ascending order.
func (g *Graph) Neighbors(line int) []int {
	ids, err := g.lines.NeighborIDs(lineKey(line))
	if err != nil {
		return []int{}
	}

	return toLines(ids)
}

// Narrowest returns the narrowest entry between lines a and b, in either
// direction. Ties go to the entry listed first.
func (g *Graph) Narrowest(a, b int) (Entry, bool) {
	between, err := g.lines.EdgesBetween(lineKey(a), lineKey(b))
	if err != nil || len(between) == 0 {
		return Entry{}, false
	}
	best := between[0]
	for _, e := range between[1:] {
		if e.Weight < best.Weight {
			best = e
		}
	}

	return g.entries[g.entryOf[best.ID]], true
}

// Components groups lines reachable from each other through entries.
// Each component is sorted, and components are ordered by their smallest line.
//
// Complexity: O(V log V + E).
func (g *Graph) Components() [][]int {
	seen := make(map[string]bool, g.lines.VertexCount())
	var out [][]int
	for _, line := range g.Lines() {
		start := lineKey(line)
		if seen[start] {
			continue
		}
		res, err := bfs.BFS(g.lines, start)
		if err != nil {
			continue
		}
		for _, id := range res.Order {
			seen[id] = true
		}
		out = append(out, toLines(res.Order))
	}

	return out
}
