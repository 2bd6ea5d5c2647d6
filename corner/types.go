package corner

import "github.com/katalvlaran/navedge/geom"

// Default thresholds, in degrees and world distance units.
const (
	DefaultCornerAngle            = 35.0
	DefaultFakeCornerCompensation = 45.0
	DefaultFakeCornerMaxLength    = 100.0
	DefaultCornerBlurDistance     = 200.0
	DefaultSmallObstacleLength    = 300.0
)

// Options holds the classification and grouping thresholds.
type Options struct {
	// CornerAngle is the turn magnitude (degrees) above which an edge is a corner candidate.
	CornerAngle float64
	// FakeCornerCompensation is the bound on |previous turn + current turn| under
	// which two sharp turns cancel out.
	FakeCornerCompensation float64
	// FakeCornerMaxLength is the longest edge still eligible for the fake-corner test.
	FakeCornerMaxLength float64
	// CornerBlurDistance is the largest combined midpoint distance at which a
	// wall between two corners is merged into them.
	CornerBlurDistance float64
	// SmallObstacleLength splits all-corner loops: edges shorter than this are grouped.
	SmallObstacleLength float64
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		CornerAngle:            DefaultCornerAngle,
		FakeCornerCompensation: DefaultFakeCornerCompensation,
		FakeCornerMaxLength:    DefaultFakeCornerMaxLength,
		CornerBlurDistance:     DefaultCornerBlurDistance,
		SmallObstacleLength:    DefaultSmallObstacleLength,
	}
}

// Corner is one maximal run of corner edges, referenced by index into the edge slice.
type Corner struct {
	ID        int `json:"id"`
	StartEdge int `json:"start_edge"`
	EndEdge   int `json:"end_edge"`
}

// InteriorLocator supplies the interior reference point for a boundary position:
// the centroid of the walkable region nearest to p. ok is false when no region is known.
type InteriorLocator interface {
	InteriorCentroid(p geom.Vec3) (centroid geom.Vec3, ok bool)
}

// LocatorFunc adapts a plain function to InteriorLocator.
type LocatorFunc func(p geom.Vec3) (geom.Vec3, bool)

// InteriorCentroid calls f(p).
func (f LocatorFunc) InteriorCentroid(p geom.Vec3) (geom.Vec3, bool) {
	return f(p)
}
