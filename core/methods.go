package core

import (
	"math"
	"sort"
	"strconv"
)

// AddVertex registers id. Adding an existing vertex is a no-op.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]map[string]struct{})
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertices returns every vertex ID sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// AddEdge connects from and to with weight and returns the new edge ID.
// Missing endpoints are created.
//
// Steps:
//  1. Validate IDs, weight and the loop constraint.
//  2. Under the write lock, ensure both endpoints and check the multi-edge constraint.
//  3. Store the edge and mirror it in the adjacency of both endpoints.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	g.nextEdgeID++
	e := &Edge{
		ID:     "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:   from,
		To:     to,
		Weight: weight,
		seq:    g.nextEdgeID,
	}
	g.edges[e.ID] = e
	g.link(from, to, e.ID)
	if from != to {
		g.link(to, from, e.ID)
	}

	return e.ID, nil
}

func (g *Graph) link(a, b, eid string) {
	set, ok := g.adjacency[a][b]
	if !ok {
		set = make(map[string]struct{}, 1)
		g.adjacency[a][b] = set
	}
	set[eid] = struct{}{}
}

// Edge returns a copy of the edge with the given ID.
func (g *Graph) Edge(id string) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgesBetween returns copies of every edge joining a and b in insertion
// order. Unknown vertices yield ErrVertexNotFound.
func (g *Graph) EdgesBetween(a, b string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[a]; !ok {
		return nil, ErrVertexNotFound
	}
	if _, ok := g.vertices[b]; !ok {
		return nil, ErrVertexNotFound
	}
	set := g.adjacency[a][b]
	out := make([]Edge, 0, len(set))
	for eid := range set {
		out = append(out, *g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out, nil
}

// NeighborIDs returns the distinct vertices sharing at least one edge with
// id, sorted ascending. A vertex with a self-loop lists itself.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	adj, ok := g.adjacency[id]
	if !ok {
		g.mu.RUnlock()
		return nil, ErrVertexNotFound
	}
	out := make([]string, 0, len(adj))
	for nbr := range adj {
		out = append(out, nbr)
	}
	g.mu.RUnlock()
	sort.Strings(out)

	return out, nil
}
