package awareness_test

import (
	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
)

// square returns a counter-clockwise unit square with its lower-left corner at (x, y).
func square(x, y float64) []geom.Segment {
	return []geom.Segment{
		geom.Seg(x, y, x+1, y),
		geom.Seg(x+1, y, x+1, y+1),
		geom.Seg(x+1, y+1, x, y+1),
		geom.Seg(x, y+1, x, y),
	}
}

// scene is two facing unit squares five units apart.
func scene() []geom.Segment {
	return append(square(0, 0), square(6, 0)...)
}

// mixedScene adds an open bend, a collinear partner and a stray segment.
func mixedScene() []geom.Segment {
	segs := scene()
	segs = append(segs,
		geom.Seg(0, 25, 0, 20), geom.Seg(0, 20, 5, 20),
		geom.Seg(10, 20, 15, 20), geom.Seg(15, 20, 15, 25),
		geom.Seg(100, 100, 101, 100),
	)

	return segs
}

// notchedLoop is a closed loop with one short step in its bottom side.
func notchedLoop() []geom.Segment {
	return []geom.Segment{
		geom.Seg(0, 0, 200, 0),
		geom.Seg(200, 0, 200, 5),
		geom.Seg(200, 5, 400, 5),
		geom.Seg(400, 5, 400, 400),
		geom.Seg(400, 400, 0, 400),
		geom.Seg(0, 400, 0, 0),
	}
}

// cornerPoint is a locator that always answers p.
func cornerPoint(x, y float64) corner.PointLocator {
	return corner.PointLocator{Point: geom.V(x, y, 0)}
}
