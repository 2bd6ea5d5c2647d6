// Package geom provides the small, stateless 2D/3D vector toolkit used by the
// boundary analysis pipeline.
//
// What:
//
//   - Vec3: a comparable 3D point/vector. Equality is exact, so a Vec3 can be
//     used directly as a map key when chaining segment endpoints.
//   - Segment: a directed Start→End pair with length, midpoint and direction.
//   - XYDegrees: signed angle between two vectors on the ground (XY) plane.
//   - ClosestPointOnSegment / ShortestSegment: closest-point queries between
//     a point and a segment and between two finite segments.
//
// Conventions:
//
//   - The XY projection is authoritative: every angle, length and distance is
//     computed on X and Y only. Z is carried through (interpolated along a
//     segment when a closest point is produced) but never measured.
//   - Angles are in degrees, in [-180, 180]. Positive means counter-clockwise
//     (the Z component of the 2D cross product is positive).
//   - Zero vectors never produce NaN: XYDegrees returns 0 ("no turn") when
//     either input has zero XY length.
//
// Complexity:
//
//   - Every function is O(1) time and memory.
//
// All functions are pure and safe for concurrent use.
package geom
