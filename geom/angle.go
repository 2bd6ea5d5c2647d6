package geom

import "math"

// XYDegrees returns the signed angle in degrees from a to b measured on the XY plane.
//
// The magnitude is acos of the dot product of the normalized XY projections,
// the sign is the sign of the Z component of a×b (positive = counter-clockwise).
// Exactly opposite vectors return +180. If either vector has zero XY length
// the result is 0, so degenerate segments read as "no turn".
//
// Complexity: O(1).
func XYDegrees(a, b Vec3) float64 {
	la, lb := a.Len2D(), b.Len2D()
	if la < Epsilon || lb < Epsilon {
		return 0
	}
	cos := a.Dot2D(b) / (la * lb)
	// rounding can push |cos| slightly past 1
	cos = math.Max(-1, math.Min(1, cos))
	deg := math.Acos(cos) * 180 / math.Pi

	cross := a.Cross2D(b)
	switch {
	case cross > 0:
		return deg
	case cross < 0:
		return -deg
	case cos < 0:
		return 180
	default:
		return 0
	}
}

// SameSign reports whether a and b are both strictly positive or both strictly negative.
func SameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
