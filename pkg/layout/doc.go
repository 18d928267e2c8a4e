// Package layout drives the full layout pipeline for a graph.
//
// # Overview
//
// A [Runner] ties the stages together: encode the graph into the
// engine's grammar, invoke the external engine process, parse its plain
// output, and apply the results. Applying updates vertex placements in
// place, rebuilds the edge table with freshly sampled polylines, and
// sets the graph record to the new bounding box.
//
// # Synchronous and asynchronous runs
//
// [Runner.Layout] blocks through the whole sequence. [Runner.LayoutAsync]
// captures the graph's structure at call time, runs the engine round
// trip on the runner's dedicated worker (serializing requests, so at
// most one engine process per graph is in flight), and schedules the
// apply phase onto a caller-supplied [Executor], typically a UI event
// loop, since the presentation stores are single-writer by convention.
// The returned channel delivers the outcome exactly once, after apply
// has run.
//
// # Caching
//
// Engine output is deterministic for a given input document and
// dpi-independent, so runners can cache raw output keyed by document
// hash and skip the process round trip entirely on repeat layouts.
package layout
