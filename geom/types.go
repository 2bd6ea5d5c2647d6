package geom

import "math"

// Epsilon is the length below which an XY vector is treated as zero.
const Epsilon = 1e-9

// Vec3 is a point or direction in world space.
// It is comparable, so two Vec3 values are equal only if all components match exactly.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Segment is a directed boundary fragment from Start to End.
type Segment struct {
	Start Vec3 `json:"start" yaml:"start"`
	End   Vec3 `json:"end" yaml:"end"`
}

// V is a shorthand constructor for Vec3.
func V(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Seg builds a Segment on the ground plane (Z=0) from two XY pairs.
// It exists mostly to keep fixtures in tests and examples readable.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: Vec3{X: x1, Y: y1}, End: Vec3{X: x2, Y: y2}}
}

// Add returns v+o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v-o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v*s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot2D returns the dot product of the XY projections.
func (v Vec3) Dot2D(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Cross2D returns the Z component of the cross product of the XY projections.
// Positive when o lies counter-clockwise from v.
func (v Vec3) Cross2D(o Vec3) float64 {
	return v.X*o.Y - v.Y*o.X
}

// Len2D returns the length of the XY projection.
func (v Vec3) Len2D() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero2D reports whether the XY projection is shorter than Epsilon.
func (v Vec3) IsZero2D() bool {
	return v.Len2D() < Epsilon
}

// Dist2D returns the XY distance between v and o.
func (v Vec3) Dist2D(o Vec3) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// LeftNormal returns the XY direction rotated 90° counter-clockwise (Z dropped).
func (v Vec3) LeftNormal() Vec3 {
	return Vec3{X: -v.Y, Y: v.X}
}

// RightNormal returns the XY direction rotated 90° clockwise (Z dropped).
func (v Vec3) RightNormal() Vec3 {
	return Vec3{X: v.Y, Y: -v.X}
}

// Lerp returns a + (b-a)*t on all three axes.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Dir returns End-Start.
func (s Segment) Dir() Vec3 {
	return s.End.Sub(s.Start)
}

// Length returns the XY length of the segment.
func (s Segment) Length() float64 {
	return s.Start.Dist2D(s.End)
}

// Midpoint returns the point halfway between Start and End.
func (s Segment) Midpoint() Vec3 {
	return Lerp(s.Start, s.End, 0.5)
}

// Reversed returns the segment with Start and End swapped.
func (s Segment) Reversed() Segment {
	return Segment{Start: s.End, End: s.Start}
}
