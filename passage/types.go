package passage

import "github.com/katalvlaran/navedge/geom"

// Side selects which normal of an edge points into walkable space.
type Side int

const (
	// SideRight uses the clockwise normal of the edge direction.
	SideRight Side = iota
	// SideLeft uses the counter-clockwise normal.
	SideLeft
	// SideEither accepts connections on both sides.
	SideEither
)

// String returns "right", "left" or "either".
func (s Side) String() string {
	switch s {
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideEither:
		return "either"
	default:
		return "unknown"
	}
}

// ParseSide is the inverse of Side.String.
func ParseSide(s string) (Side, bool) {
	switch s {
	case "right", "":
		return SideRight, true
	case "left":
		return SideLeft, true
	case "either":
		return SideEither, true
	default:
		return SideRight, false
	}
}

// DefaultPerpendicularTolerance is the accepted deviation, in degrees, of a
// connection from the interior normal.
const DefaultPerpendicularTolerance = 45.0

// Options configures Resolve.
type Options struct {
	// PerpendicularTolerance is the largest accepted angle (degrees) between a
	// connection and the edge's interior normal.
	PerpendicularTolerance float64
	// NearestPerLine keeps only the closest edge of each other line as a candidate.
	NearestPerLine bool
	// MaxWidth drops candidates wider than this; 0 disables the limit.
	MaxWidth float64
	// InteriorSide picks the normal that points into walkable space.
	InteriorSide Side
}

// DefaultOptions returns ±45°, nearest edge per line, no width limit, SideRight.
func DefaultOptions() Options {
	return Options{
		PerpendicularTolerance: DefaultPerpendicularTolerance,
		NearestPerLine:         true,
		InteriorSide:           SideRight,
	}
}

// Entry is a passage candidate between a corner region and another line.
type Entry struct {
	CornerID   int       `json:"corner_id"`
	SourceLine int       `json:"source_line"`
	TargetLine int       `json:"target_line"`
	EdgeA      int       `json:"edge_a"`
	EdgeB      int       `json:"edge_b"`
	PointA     geom.Vec3 `json:"point_a"`
	PointB     geom.Vec3 `json:"point_b"`
	Width      float64   `json:"width"`
}
