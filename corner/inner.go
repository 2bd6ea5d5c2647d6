package corner

import (
	"math"

	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/geom"
)

// FilterInner downgrades Corners that turn toward the interior reference.
//
// For each Corner the locator is asked for the centroid nearest the edge
// midpoint. If the signed angle from the edge direction to (centroid - Start)
// has the same sign as the edge's TurnDegree, the edge becomes Wall. Edges
// without a centroid are left untouched; a nil locator leaves every edge
// untouched. It returns the number of downgraded edges.
//
// Complexity: O(n) locator calls.
func FilterInner(edges []chain.Edge, loc InteriorLocator) int {
	if loc == nil {
		return 0
	}
	downgraded := 0
	for i := range edges {
		e := &edges[i]
		if e.Type != chain.Corner {
			continue
		}
		c, ok := loc.InteriorCentroid(e.Midpoint())
		if !ok {
			continue
		}
		side := geom.XYDegrees(e.Dir(), c.Sub(e.Start))
		if geom.SameSign(side, e.TurnDegree) {
			e.Type = chain.Wall
			downgraded++
		}
	}

	return downgraded
}

// PointLocator answers every query with the same reference point, e.g. the
// querying agent's position, which is known to be walkable.
type PointLocator struct {
	Point geom.Vec3
}

// InteriorCentroid returns l.Point.
func (l PointLocator) InteriorCentroid(geom.Vec3) (geom.Vec3, bool) {
	return l.Point, true
}

// PolygonLocator resolves interior references from walkable polygons such as
// navigation mesh polygons.
type PolygonLocator struct {
	polys     [][]geom.Vec3
	centroids []geom.Vec3
}

// NewPolygonLocator indexes polys. Polygons with fewer than three vertices are ignored.
// The vertex slices are copied.
func NewPolygonLocator(polys [][]geom.Vec3) *PolygonLocator {
	l := &PolygonLocator{}
	for _, p := range polys {
		if len(p) < 3 {
			continue
		}
		cp := append([]geom.Vec3(nil), p...)
		l.polys = append(l.polys, cp)
		l.centroids = append(l.centroids, polygonCentroid(cp))
	}

	return l
}

// Len returns the number of indexed polygons.
func (l *PolygonLocator) Len() int {
	return len(l.polys)
}

// InteriorCentroid returns the centroid of the polygon closest to p: a
// polygon containing p wins, otherwise the one with the smallest distance
// from p to its boundary. Ties keep the earlier polygon.
//
// Complexity: O(total vertices).
func (l *PolygonLocator) InteriorCentroid(p geom.Vec3) (geom.Vec3, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, poly := range l.polys {
		d := 0.0
		if !containsPoint(poly, p) {
			d = boundaryDistance(poly, p)
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return geom.Vec3{}, false
	}

	return l.centroids[best], true
}

// containsPoint is the even-odd ray casting test on XY.
func containsPoint(poly []geom.Vec3, p geom.Vec3) bool {
	inside := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}

	return inside
}

// boundaryDistance is the XY distance from p to the closest polygon edge.
func boundaryDistance(poly []geom.Vec3, p geom.Vec3) float64 {
	d := math.Inf(1)
	for i := range poly {
		s := geom.Segment{Start: poly[i], End: poly[(i+1)%len(poly)]}
		q, _ := geom.ClosestPointOnSegment(p, s)
		d = math.Min(d, q.Dist2D(p))
	}

	return d
}

// polygonCentroid is the area-weighted centroid, falling back to the vertex
// average for degenerate (zero-area) polygons. Z is the vertex average.
func polygonCentroid(poly []geom.Vec3) geom.Vec3 {
	var area, cx, cy, z float64
	for i := range poly {
		a, b := poly[i], poly[(i+1)%len(poly)]
		cross := a.X*b.Y - b.X*a.Y
		area += cross
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
		z += a.Z
	}
	n := float64(len(poly))
	if math.Abs(area) < geom.Epsilon {
		var sum geom.Vec3
		for _, v := range poly {
			sum = sum.Add(v)
		}
		return sum.Scale(1 / n)
	}

	return geom.Vec3{X: cx / (3 * area), Y: cy / (3 * area), Z: z / n}
}
