package geom

// ClosestPointOnSegment projects p onto s in the XY plane and clamps the
// parameter to [0,1]. It returns the closest point (Z interpolated along s)
// and the clamped parameter t. A degenerate segment yields (s.Start, 0).
//
// Complexity: O(1).
func ClosestPointOnSegment(p Vec3, s Segment) (Vec3, float64) {
	d := s.Dir()
	lenSq := d.Dot2D(d)
	if lenSq < Epsilon*Epsilon {
		return s.Start, 0
	}
	t := p.Sub(s.Start).Dot2D(d) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Lerp(s.Start, s.End, t), t
}

// Intersect reports whether a and b cross on the XY plane and, if so, the
// crossing point on each (the XY coordinates agree, Z follows each segment).
// Parallel and collinear segments never report an intersection.
//
// Complexity: O(1).
func Intersect(a, b Segment) (onA, onB Vec3, ok bool) {
	r, s := a.Dir(), b.Dir()
	denom := r.Cross2D(s)
	if denom > -Epsilon && denom < Epsilon {
		return Vec3{}, Vec3{}, false
	}
	qp := b.Start.Sub(a.Start)
	t := qp.Cross2D(s) / denom
	u := qp.Cross2D(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Vec3{}, Vec3{}, false
	}

	return Lerp(a.Start, a.End, t), Lerp(b.Start, b.End, u), true
}

// ShortestSegment returns the closest pair of points between two finite
// segments and their XY distance.
//
// Crossing segments connect at their intersection with distance 0. Otherwise
// the minimum lies at an endpoint of one of the segments, so the four
// candidates are: each endpoint of b projected onto a, and each endpoint of a
// projected onto b. Ties keep the earliest candidate in that order.
//
// Complexity: O(1).
func ShortestSegment(a, b Segment) (onA, onB Vec3, dist float64) {
	if pa, pb, ok := Intersect(a, b); ok {
		return pa, pb, 0
	}

	best := -1.0
	try := func(pa, pb Vec3) {
		if d := pa.Dist2D(pb); best < 0 || d < best {
			best, onA, onB = d, pa, pb
		}
	}
	p, _ := ClosestPointOnSegment(b.Start, a)
	try(p, b.Start)
	p, _ = ClosestPointOnSegment(b.End, a)
	try(p, b.End)
	p, _ = ClosestPointOnSegment(a.Start, b)
	try(a.Start, p)
	p, _ = ClosestPointOnSegment(a.End, b)
	try(a.End, p)

	return onA, onB, best
}
