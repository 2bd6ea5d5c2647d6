package awareness

import (
	"context"

	"github.com/katalvlaran/navedge/geom"
)

// BoundarySource returns the boundary segments within radius of origin.
// Implementations should honour ctx cancellation.
type BoundarySource interface {
	FindEdges(ctx context.Context, origin geom.Vec3, radius float64) ([]geom.Segment, error)
}

// SourceFunc adapts a plain function to BoundarySource.
type SourceFunc func(ctx context.Context, origin geom.Vec3, radius float64) ([]geom.Segment, error)

// FindEdges calls f.
func (f SourceFunc) FindEdges(ctx context.Context, origin geom.Vec3, radius float64) ([]geom.Segment, error) {
	return f(ctx, origin, radius)
}

// StaticSource serves a fixed segment set. A segment is returned when its
// closest XY point lies within radius of origin; radius ≤ 0 returns all of them.
type StaticSource struct {
	Segments []geom.Segment
}

// FindEdges filters s.Segments around origin, preserving their order.
func (s StaticSource) FindEdges(ctx context.Context, origin geom.Vec3, radius float64) ([]geom.Segment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]geom.Segment, 0, len(s.Segments))
	for _, seg := range s.Segments {
		if radius > 0 {
			p, _ := geom.ClosestPointOnSegment(origin, seg)
			if p.Dist2D(origin) > radius {
				continue
			}
		}
		out = append(out, seg)
	}

	return out, nil
}
