// Package awareness runs the boundary analysis pipeline and publishes its
// results as immutable snapshots.
//
// What:
//
//   - Run: the pure pipeline. Segments go through chain.Build, chain.Link,
//     corner.Classify, corner.FilterInner, corner.MarkEntries, corner.Group
//     and passage.Resolve, in that order, on one freshly owned edge slice.
//   - Analyzer: queries a BoundarySource around an origin, runs the pipeline
//     and publishes the outcome as a Snapshot. Readers call Latest and always
//     get a complete snapshot or nil.
//   - Config: every threshold of the pipeline, with DefaultConfig, Validate
//     and YAML loading (LoadConfig, LoadConfigFile).
//
// Concurrency:
//
//	Each Analyze/Rebuild call works on its own data and needs no locks.
//	Publication goes through an atomic pointer guarded by a generation
//	counter: a rebuild that started earlier never replaces a snapshot
//	published by a rebuild that started later.
//
// Errors:
//
//   - ErrInvalidConfig: Config.Validate failed (wrapped with the field name).
//   - ErrNilSource: Rebuild was called on an Analyzer without a source.
//   - ErrNoBoundaryData: the source returned no segments.
//
// Source failures are wrapped with %w and returned unchanged otherwise. A
// failed Rebuild leaves the published snapshot untouched.
package awareness
