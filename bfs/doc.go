// Package bfs provides breadth-first search over a core.Graph, returning
// hop distances, parent links and visit order.
//
// What:
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex.
//     Edge weights are ignored; only connectivity matters.
//   - Result holds Order (visit sequence), Depth (hops from start) and
//     Parent (predecessor in the BFS tree).
//   - OnVisit runs at each visit and may abort the walk with an error.
//   - FilterNeighbor skips individual neighbours; MaxDepth bounds the walk.
//
// Determinism:
//
//	core.NeighborIDs is sorted by ID and neighbours are enqueued in that
//	order, so the visit sequence is reproducible.
//
// Complexity:
//
//   - Time:   O(V + E log d) for neighbour sorting.
//   - Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil:            the graph pointer is nil.
//   - ErrStartVertexNotFound: the start vertex does not exist.
//   - ErrOptionViolation:     an invalid Option (negative MaxDepth).
//   - ErrNeighbors:           core.NeighborIDs failed for a vertex.
//   - Wrapped OnVisit errors and context cancellation.
package bfs
