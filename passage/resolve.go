package passage

import (
	"math"
	"sort"

	"github.com/katalvlaran/navedge/chain"
	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
)

// Resolve computes passage entries for the given corner regions.
//
// Behavior:
//  1. Map every edge to the region containing it (corner.Members).
//  2. For each region edge that is a Corner, or an Entry whose predecessor is
//     a Corner, collect the edges of other non-singleton lines sorted by
//     midpoint distance (ties by index). With NearestPerLine only the first
//     edge of each line stays.
//  3. For each candidate compute geom.ShortestSegment. Drop it when the
//     connection has zero length, exceeds MaxWidth, or deviates from the
//     interior normal by more than PerpendicularTolerance.
//  4. Keep, per (region, target line), the widest surviving candidate.
//
// Entries are returned in the order their (region, line) pair was first seen.
//
// Complexity: O(k · n log n).
func Resolve(edges []chain.Edge, corners []corner.Corner, opts Options) []Entry {
	if len(edges) == 0 || len(corners) == 0 {
		return nil
	}
	owner := make([]int, len(edges))
	for i := range owner {
		owner[i] = -1
	}
	for _, c := range corners {
		for _, m := range corner.Members(edges, c) {
			owner[m] = c.ID
		}
	}

	type pairKey struct{ corner, line int }
	kept := make(map[pairKey]int)
	var out []Entry

	for i := range edges {
		e := &edges[i]
		if owner[i] < 0 || !isSourceEdge(edges, e) {
			continue
		}
		for _, j := range candidates(edges, i, opts.NearestPerLine) {
			pa, pb, width := geom.ShortestSegment(e.Segment(), edges[j].Segment())
			if opts.MaxWidth > 0 && width > opts.MaxWidth {
				continue
			}
			if !faces(e.Dir(), pb.Sub(pa), opts) {
				continue
			}
			entry := Entry{
				CornerID:   owner[i],
				SourceLine: e.LineID,
				TargetLine: edges[j].LineID,
				EdgeA:      i,
				EdgeB:      j,
				PointA:     pa,
				PointB:     pb,
				Width:      width,
			}
			key := pairKey{owner[i], edges[j].LineID}
			if idx, ok := kept[key]; ok {
				if width > out[idx].Width {
					out[idx] = entry
				}
				continue
			}
			kept[key] = len(out)
			out = append(out, entry)
		}
	}

	return out
}

// isSourceEdge reports whether e may originate a passage.
func isSourceEdge(edges []chain.Edge, e *chain.Edge) bool {
	switch e.Type {
	case chain.Corner:
		return true
	case chain.Entry:
		return e.Prev != chain.NoEdge && edges[e.Prev].Type == chain.Corner
	default:
		return false
	}
}

// candidates returns edges of other non-singleton lines ordered by midpoint distance to edges[src].
func candidates(edges []chain.Edge, src int, nearestPerLine bool) []int {
	mid := edges[src].Midpoint()
	line := edges[src].LineID
	type cand struct {
		index int
		dist  float64
	}
	var cs []cand
	for j := range edges {
		id := edges[j].LineID
		if id == chain.SingletonLine || id == line {
			continue
		}
		cs = append(cs, cand{j, mid.Dist2D(edges[j].Midpoint())})
	}
	sort.SliceStable(cs, func(a, b int) bool { return cs[a].dist < cs[b].dist })

	out := make([]int, 0, len(cs))
	seen := make(map[int]bool)
	for _, c := range cs {
		if nearestPerLine {
			id := edges[c.index].LineID
			if seen[id] {
				continue
			}
			seen[id] = true
		}
		out = append(out, c.index)
	}

	return out
}

// faces reports whether conn leaves an edge with direction dir roughly along
// its interior normal.
func faces(dir, conn geom.Vec3, opts Options) bool {
	if dir.IsZero2D() || conn.IsZero2D() {
		return false
	}
	normal := dir.RightNormal()
	if opts.InteriorSide == SideLeft {
		normal = dir.LeftNormal()
	}
	angle := math.Abs(geom.XYDegrees(normal, conn))
	if opts.InteriorSide == SideEither {
		angle = math.Min(angle, 180-angle)
	}

	return angle <= opts.PerpendicularTolerance
}
