// Package core provides the thread-safe undirected graph that navedge builds
// over boundary lines: vertices are string IDs, edges carry a float64 weight
// (a passage width) and parallel edges may be kept side by side.
//
// What:
//
//   - NewGraph with functional options (WithMultiEdges, WithLoops).
//   - AddVertex / HasVertex / Vertices / VertexCount.
//   - AddEdge / Edge / EdgesBetween / EdgeCount.
//   - NeighborIDs: the distinct vertices adjacent to one vertex.
//
// Determinism:
//
//	Vertices and NeighborIDs are sorted by ID; EdgesBetween is sorted by
//	insertion order. Edge IDs are "e1", "e2", ... in insertion order.
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Queries take the read lock and
//	return copies, so callers may keep results after further mutation.
//
// Complexity:
//
//   - AddVertex, AddEdge, HasVertex: O(1) amortized.
//   - NeighborIDs: O(d log d) for degree d.
//   - Vertices: O(V log V).
//
// Errors:
//
//   - ErrEmptyVertexID:       a vertex ID is "".
//   - ErrVertexNotFound:      the queried vertex does not exist.
//   - ErrEdgeNotFound:        the queried edge does not exist.
//   - ErrBadWeight:           weight is negative, NaN or infinite.
//   - ErrLoopNotAllowed:      from == to without WithLoops.
//   - ErrMultiEdgeNotAllowed: a second edge between the same pair without WithMultiEdges.
package core
