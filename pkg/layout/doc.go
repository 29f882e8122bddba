// Package layout turns abstract directed graphs into concrete 2D positions,
// collision-free bounding boxes, and routed edge paths for diagram rendering.
//
// # Overview
//
// The package offers two independent layout strategies:
//
//   - The hierarchical engine ([Engine.ComputeLayout]) implements a
//     Sugiyama-style pipeline for class diagrams: cycle breaking, rank
//     assignment by longest path, barycenter crossing reduction, coordinate
//     assignment, pairwise collision resolution, and orthogonal edge
//     routing. A grid layout substitutes whenever ranking fails.
//   - [TieredColumns] implements breadth-first topological layering for
//     knowledge-graph and mind-map views, where wide and shallow beats deep.
//
// All positions follow the top-left anchor convention.
//
// # Error Handling
//
// The engine is designed to never raise for malformed or cyclic input.
// Cyclic edges lose their ranking influence but are still routed; edges
// referencing unknown nodes are dropped; ranking failures degrade to the
// grid fallback, which succeeds unconditionally. Long computations log a
// warning and run to completion - there is no internal cancellation.
//
// # Caching
//
// Every [Engine] owns a bounded [Cache] memoizing full layout computations
// by graph content. Construct the cache explicitly and pass it by handle;
// the package deliberately has no global instance.
//
// # Concurrency
//
// Layout computation is synchronous and CPU-bound. The cache is mutex
// guarded, so one engine can serve multiple goroutines; everything else is
// pure computation over the caller's data.
package layout
