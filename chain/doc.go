// Package chain reconstructs ordered boundary lines from an unordered bag of
// directed wall segments and links neighbouring edges.
//
// What:
//
//   - Build: turns segments into an ordered []Edge where edges of the same
//     line are contiguous and connected head-to-tail. Every edge gets a
//     LineID (1..k) and an EdgeID (position within its line). Segments with
//     no partner land in the reserved SingletonLine (0) at the front.
//     A closed loop always starts at its lowest Start point, so its layout
//     does not depend on input order.
//   - Link: sets Prev/Next indices between consecutive edges of a line and
//     closes loops whose last End equals their first Start.
//   - Lines: summarises the contiguous line spans of a built slice.
//   - CheckContinuity: verifies the head-to-tail invariant along Next links.
//
// Why:
//
//   - A navigation boundary query returns wall fragments in arbitrary order;
//     every later classification step needs the true walking order.
//
// Storage model:
//
//	Edges live in one slice owned by the caller. Prev and Next are indices
//	into that slice (NoEdge when absent), so copying or reslicing the whole
//	slice never leaves a dangling neighbour.
//
// Complexity:
//
//   - Build: O(n) expected time (hash lookups keyed by exact endpoints), O(n) memory.
//   - Link:  O(n) time, O(1) extra memory.
//   - Lines: O(n) time.
//
// Errors:
//
//   - ErrBrokenChain: CheckContinuity found a Next link whose Start does not
//     match the current End.
package chain
