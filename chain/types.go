package chain

import (
	"fmt"

	"github.com/katalvlaran/navedge/geom"
)

// NoEdge marks an absent Prev/Next neighbour.
const NoEdge = -1

// SingletonLine is the reserved LineID for edges without a connecting partner.
const SingletonLine = 0

// WallType classifies the trailing vertex of an edge.
// The numeric order is a rank: everything below Corner is a non-corner classification.
type WallType uint8

const (
	// Wall is a straight (or unclassified) boundary edge.
	Wall WallType = iota
	// FakeCorner marks one of two adjacent sharp turns that cancel each other out.
	FakeCorner
	// Corner marks a genuine turn in the boundary.
	Corner
	// Entry marks a short run next to a corner that may be a gap or doorway.
	Entry
)

var wallTypeNames = [...]string{"Wall", "FakeCorner", "Corner", "Entry"}

// String returns the type name, e.g. "Corner".
func (t WallType) String() string {
	if int(t) < len(wallTypeNames) {
		return wallTypeNames[t]
	}

	return fmt.Sprintf("WallType(%d)", uint8(t))
}

// MarshalText encodes the type by name.
func (t WallType) MarshalText() ([]byte, error) {
	if int(t) >= len(wallTypeNames) {
		return nil, fmt.Errorf("chain: unknown wall type %d", uint8(t))
	}

	return []byte(wallTypeNames[t]), nil
}

// UnmarshalText decodes a type name produced by MarshalText.
func (t *WallType) UnmarshalText(b []byte) error {
	for i, name := range wallTypeNames {
		if name == string(b) {
			*t = WallType(i)
			return nil
		}
	}

	return fmt.Errorf("chain: unknown wall type %q", string(b))
}

// Edge is one directed boundary segment placed on a reconstructed line.
//
// Start, End and LineID are fixed by Build. Later stages only touch Type,
// TurnDegree, Prev and Next.
type Edge struct {
	Start geom.Vec3 `json:"start"`
	End   geom.Vec3 `json:"end"`

	// EdgeID is the position of the edge within its line, starting at 0.
	EdgeID int `json:"edge_id"`

	// LineID identifies the line; SingletonLine for unpaired edges.
	LineID int `json:"line_id"`

	// Type is the current classification of the edge's trailing vertex.
	Type WallType `json:"type"`

	// TurnDegree is the signed XY angle from this edge to Next, 0 until classified.
	TurnDegree float64 `json:"turn_degree"`

	// Prev and Next index neighbouring edges of the same line, or NoEdge.
	Prev int `json:"prev"`
	Next int `json:"next"`
}

// Segment returns the edge geometry as a geom.Segment.
func (e Edge) Segment() geom.Segment {
	return geom.Segment{Start: e.Start, End: e.End}
}

// Dir returns End-Start.
func (e Edge) Dir() geom.Vec3 {
	return e.End.Sub(e.Start)
}

// Length returns the XY length of the edge.
func (e Edge) Length() float64 {
	return e.Start.Dist2D(e.End)
}

// Midpoint returns the centre of the edge.
func (e Edge) Midpoint() geom.Vec3 {
	return geom.Lerp(e.Start, e.End, 0.5)
}

// Line describes one contiguous span of a built edge slice.
type Line struct {
	// ID is the LineID shared by every edge in the span.
	ID int
	// First and Last are inclusive indices of the span.
	First, Last int
	// Closed reports whether the last End meets the first Start.
	Closed bool
}

// Len returns the number of edges in the line.
func (l Line) Len() int {
	return l.Last - l.First + 1
}
