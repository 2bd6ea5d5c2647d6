// Package passage pairs corner regions with nearby boundary lines and sizes
// the gap between them.
//
// What:
//
//   - Resolve: for every Corner edge (or Entry edge right after a Corner)
//     that belongs to a corner region, finds the closest edges of other
//     lines, computes the shortest connecting segment, keeps only
//     connections roughly perpendicular to the boundary on its interior side,
//     and keeps the widest survivor per (region, target line).
//   - Graph: lines as vertices of a core.Graph, entries as edges weighted
//     by width. Components runs bfs to cluster obstacles that are linked by
//     passages.
//
// Interior side:
//
//	Boundary edges are expected to be wound with the walkable space on a
//	fixed side. The default, SideRight, fits counter-clockwise obstacle
//	outlines: walking along the wall, free space is on the right. SideEither
//	accepts both sides when the winding is unknown.
//
// Complexity:
//
//   - Resolve: O(k · n log n) for k corner edges and n edges (candidate sort).
//   - Graph.Components: O(V log V + E) via bfs.BFS per component.
package passage
