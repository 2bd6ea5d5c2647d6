// Package navedge reconstructs and classifies boundary geometry around an
// agent and finds the passages between separate obstacles.
//
// What is navedge?
//
//	Given an unordered bag of boundary segments (wall fragments returned by a
//	navigation query around an agent), navedge:
//		• rebuilds the continuous lines and loops they form
//		• labels every vertex as wall, corner, fake corner or entry
//		• groups contiguous corner runs into corner regions
//		• pairs each region with the nearest facing lines as passage entries
//
// Package layout:
//
//	geom/         Vec3, Segment, signed XY angles, closest points
//	chain/        Build and Link: segments → ordered, linked lines
//	corner/       Classify, FilterInner, MarkEntries, Group, interior locators
//	passage/      Resolve entries between regions and lines; line graph
//	core/         thread-safe weighted graph with string vertex IDs
//	bfs/          breadth-first search over a core.Graph
//	awareness/    Config, the Run pipeline, Analyzer with snapshot publication
//	schema/       JSON boundary document, schema validation and decoding
//	httpapi/      REST transport for an Analyzer
//	cmd/navedge/  command-line front end
//
// Quick start:
//
//	res := awareness.Run(segments, awareness.DefaultConfig(), nil)
//	for _, e := range res.Entries {
//		fmt.Printf("line %d -> line %d: %.1f\n", e.SourceLine, e.TargetLine, e.Width)
//	}
//
// The geometry packages are pure and allocation-light; only awareness keeps
// state, and it publishes each analysis as an immutable snapshot.
package navedge
