package chain

import "github.com/katalvlaran/navedge/geom"

// builder holds the working state of one Build call.
type builder struct {
	forward  map[geom.Vec3]geom.Vec3 // start → end of every unconsumed segment
	backward map[geom.Vec3]geom.Vec3 // end → start, for O(1) head extension
	order    []geom.Segment          // input order, used to pick the next seed deterministically
	cursor   int                     // first position in order not yet inspected

	singles []geom.Segment
	lines   [][]geom.Segment

	// current line under construction: head holds prepended segments in
	// reverse order, tail holds the seed and everything appended after it.
	head, tail []geom.Segment
	open       bool
}

// Build reconstructs ordered lines from segments.
//
// Behavior:
//  1. Index every segment start→end (and end→start). A later segment with
//     the same Start overwrites an earlier one, so duplicated geometry keeps
//     only one of its copies.
//  2. Seed a line from the first remaining segment in input order. If no
//     other remaining segment continues from its End or ends at its Start,
//     it is a singleton instead.
//  3. While the current line's tail End is some segment's Start, append it.
//     Otherwise, while some segment ends at the head Start, prepend it.
//  4. When neither end can grow, close the line and go back to step 2. A
//     closed loop starts at the edge with the smallest Start (X, Y, then Z).
//
// The result lists singletons first (LineID 0), then lines 1..k in discovery
// order. EdgeID is the position within the line. Prev/Next are left as NoEdge;
// call Link to connect neighbours.
//
// Complexity: O(n) expected time, O(n) memory.
func Build(segments []geom.Segment) []Edge {
	if len(segments) == 0 {
		return nil
	}
	b := &builder{
		forward:  make(map[geom.Vec3]geom.Vec3, len(segments)),
		backward: make(map[geom.Vec3]geom.Vec3, len(segments)),
		order:    segments,
	}
	for _, s := range segments {
		b.forward[s.Start] = s.End
		b.backward[s.End] = s.Start
	}

	for len(b.forward) > 0 {
		if b.open {
			if s, ok := b.successor(b.tail[len(b.tail)-1].End); ok {
				b.consume(s)
				b.tail = append(b.tail, s)
				continue
			}
			if s, ok := b.predecessor(b.headStart()); ok {
				b.consume(s)
				b.head = append(b.head, s)
				continue
			}
			b.closeLine()
		}
		s, ok := b.nextSeed()
		if !ok {
			break
		}
		b.seed(s)
	}
	if b.open {
		b.closeLine()
	}

	return b.flatten()
}

// successor returns the unconsumed segment starting at p.
func (b *builder) successor(p geom.Vec3) (geom.Segment, bool) {
	end, ok := b.forward[p]
	if !ok {
		return geom.Segment{}, false
	}

	return geom.Segment{Start: p, End: end}, true
}

// predecessor returns the unconsumed segment ending at p.
func (b *builder) predecessor(p geom.Vec3) (geom.Segment, bool) {
	start, ok := b.backward[p]
	if !ok {
		return geom.Segment{}, false
	}
	// the forward entry may have been consumed or overwritten since
	if end, ok := b.forward[start]; !ok || end != p {
		return geom.Segment{}, false
	}

	return geom.Segment{Start: start, End: p}, true
}

// consume removes s from both indexes.
func (b *builder) consume(s geom.Segment) {
	delete(b.forward, s.Start)
	if start, ok := b.backward[s.End]; ok && start == s.Start {
		delete(b.backward, s.End)
	}
}

// nextSeed returns the first segment in input order that is still unconsumed.
func (b *builder) nextSeed() (geom.Segment, bool) {
	for b.cursor < len(b.order) {
		s := b.order[b.cursor]
		b.cursor++
		if end, ok := b.forward[s.Start]; ok && end == s.End {
			return s, true
		}
	}

	return geom.Segment{}, false
}

// seed consumes s and either opens a new line with it or files it as a singleton.
func (b *builder) seed(s geom.Segment) {
	b.consume(s)
	_, hasNext := b.successor(s.End)
	_, hasPrev := b.predecessor(s.Start)
	if !hasNext && !hasPrev {
		b.singles = append(b.singles, s)
		return
	}
	b.head = b.head[:0]
	b.tail = append(b.tail[:0], s)
	b.open = true
}

// headStart returns the Start of the current first segment of the line.
func (b *builder) headStart() geom.Vec3 {
	if len(b.head) > 0 {
		return b.head[len(b.head)-1].Start
	}

	return b.tail[0].Start
}

// closeLine stores the current line in walking order. A closed loop is
// rotated to start at its canonical edge, so its layout does not depend on
// which of its segments seeded it.
func (b *builder) closeLine() {
	line := make([]geom.Segment, 0, len(b.head)+len(b.tail))
	for i := len(b.head) - 1; i >= 0; i-- {
		line = append(line, b.head[i])
	}
	line = append(line, b.tail...)
	if len(line) > 1 && line[len(line)-1].End == line[0].Start {
		line = rotate(line, canonicalStart(line))
	}
	b.lines = append(b.lines, line)
	b.open = false
}

// canonicalStart returns the index of the segment whose Start is smallest by
// X, then Y, then Z. Starts are unique within a line.
func canonicalStart(line []geom.Segment) int {
	best := 0
	for i, s := range line[1:] {
		p, q := s.Start, line[best].Start
		if p.X < q.X || (p.X == q.X && (p.Y < q.Y || (p.Y == q.Y && p.Z < q.Z))) {
			best = i + 1
		}
	}

	return best
}

// rotate returns line starting at index k.
func rotate(line []geom.Segment, k int) []geom.Segment {
	if k == 0 {
		return line
	}
	out := make([]geom.Segment, 0, len(line))
	out = append(out, line[k:]...)

	return append(out, line[:k]...)
}

// flatten lays out singletons then lines and assigns identifiers.
func (b *builder) flatten() []Edge {
	total := len(b.singles)
	for _, l := range b.lines {
		total += len(l)
	}
	edges := make([]Edge, 0, total)
	for i, s := range b.singles {
		edges = append(edges, newEdge(s, SingletonLine, i))
	}
	for li, l := range b.lines {
		for i, s := range l {
			edges = append(edges, newEdge(s, li+1, i))
		}
	}

	return edges
}

func newEdge(s geom.Segment, lineID, edgeID int) Edge {
	return Edge{
		Start:  s.Start,
		End:    s.End,
		EdgeID: edgeID,
		LineID: lineID,
		Type:   Wall,
		Prev:   NoEdge,
		Next:   NoEdge,
	}
}
