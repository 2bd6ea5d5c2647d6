// Package corner classifies the vertices of reconstructed boundary lines and
// groups contiguous corner runs into named regions.
//
// What:
//
//   - Classify: signed XY turn angle from each edge to its successor. Turns
//     sharper than CornerAngle become Corner, unless two adjacent sharp turns
//     nearly cancel out, in which case both edges become FakeCorner.
//   - FilterInner: downgrades Corners that bend toward the local interior
//     reference (a centroid supplied by an InteriorLocator) back to Wall.
//   - MarkEntries: Wall edges next to exactly one Corner become Entry; a Wall
//     squeezed between two close Corners is merged into one wide Corner.
//   - Group: maximal Corner/Entry runs become Corner records. Closed loops
//     made only of Corners (small wrapped obstacles) are split by edge length.
//
// Ordering:
//
//	The stages are meant to run in the order listed, each on the output of
//	the previous one, on a slice produced by chain.Build and chain.Link.
//
// Complexity:
//
//   - Classify, MarkEntries, Group: O(n) time.
//   - FilterInner: O(n) locator calls.
//
// Thresholds are plain fields of Options; DefaultOptions mirrors the values
// the pipeline was tuned with, which are not universally right for every map
// scale.
package corner
