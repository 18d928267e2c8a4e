// Package pkg provides the core libraries for jaqumal-graph directed graph
// layout.
//
// # Overview
//
// jaqumal-graph computes drawable geometry for directed graphs by delegating
// placement and edge routing to the Graphviz dot engine and converting its
// plain-format answer into device coordinates. The pkg directory is organized
// into four main areas:
//
//  1. [graph] - Domain model (vertices, adjacency, attribute row stores)
//  2. [layout] - Orchestration (encode → engine → parse → apply → publish)
//  3. [spline] - Geometry (clamped B-splines, adaptive polylines, arrowheads)
//  4. [cache] / [store] - Infrastructure (engine output cache, named layouts)
//
// # Architecture
//
// The typical data flow through a layout:
//
//	Graph description (JSON file or HTTP request)
//	         ↓
//	    [graph] package (vertex rows, adjacency, id allocation)
//	         ↓
//	    [dot] package (deterministic DOT text)
//	         ↓
//	    [layout] package (dot -Tplain -y subprocess, cached)
//	         ↓
//	    [plain] package (token-exact parse into nodes and splines)
//	         ↓
//	    [spline] package (sampled polylines + arrowhead wings)
//	         ↓
//	    vertex/edge row stores, JSON export, SVG/PNG previews
//
// # Quick Start
//
// Build a graph and lay it out:
//
//	import (
//	    "context"
//	    "github.com/sdankbar/jaqumal-graph/pkg/graph"
//	    "github.com/sdankbar/jaqumal-graph/pkg/layout"
//	)
//
//	// 1. Describe the graph (sizes in inches)
//	g, _ := graph.New(graph.Options{DPI: 96})
//	a, _ := g.CreateVertex(1, 1, nil)
//	b, _ := g.CreateVertex(1, 1, nil)
//	_ = a.AddChild(b)
//
//	// 2. Run the engine and publish geometry
//	runner, _ := layout.NewRunner(g, layout.Options{})
//	defer runner.Close()
//	_ = runner.Layout(context.Background())
//
//	// 3. Read device-unit results
//	bounds := a.Bounds()
//	rows := g.EdgeTable().Snapshot()
//
// # Main Packages
//
// ## Domain Model
//
// [graph] - Vertices with engine-facing octal-alphabetic ids, parent/child
// adjacency, and the row stores presentation layers subscribe to. Vertex
// geometry starts as a placeholder and is replaced when a layout applies.
//
// [variant] - Closed tagged union (Bool, Int, Real, String, Point, PointList)
// used for every attribute and row value.
//
// [geom] - Points and rectangles shared by the parser, spline evaluator, and
// row stores.
//
// ## Layout Pipeline
//
// [dot] - Deterministic DOT encoding: box-shaped nodes in insertion order,
// grouped child edges with arrowheads suppressed.
//
// [layout] - The orchestrator. Spawns the configured engine binary with
// -Tplain -y, parses the answer, applies geometry, and publishes rows. Also
// the serial async worker and the engine-output cache wiring.
//
// [plain] - Line-oriented parser for the engine's plain format with exact
// token-count validation.
//
// [spline] - Clamped cubic B-spline evaluation (Cox–de Boor) and adaptive
// polyline sampling with ±30° arrowhead wings.
//
// [sink] - Row-store contract used to publish vertex and edge geometry, with
// the in-memory implementation.
//
// ## Infrastructure
//
// [cache] - Engine output cache: file, Redis, null, and key-prefix scoped
// backends behind one interface, SHA-256 keys over the DOT text.
//
// [store] - Named layout persistence for the HTTP API: in-memory and MongoDB
// implementations.
//
// [io] - JSON import of graph descriptions and export of computed layouts.
//
// [render] - SVG/PNG/DOT previews of the encoder's output via go-graphviz.
//
// [config] - TOML configuration shared by the CLI and server.
//
// [errors] - Structured errors with stable codes, plus input validation
// helpers.
//
// [observability] - Hook interfaces the pipeline reports timings, cache
// events, and engine runs through; the server installs Prometheus collectors
// behind them.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...              # All tests
//	go test ./pkg/spline/...       # Specific package
//	go test -run Example           # Examples only
//
// Layout tests use a stub engine executable, so Graphviz does not need to be
// installed.
//
// [graph]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/graph
// [variant]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/variant
// [geom]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/geom
// [dot]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/dot
// [layout]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/layout
// [plain]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/plain
// [spline]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/spline
// [sink]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/sink
// [cache]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/cache
// [store]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/store
// [io]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/io
// [render]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/render
// [config]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/config
// [errors]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/sdankbar/jaqumal-graph/pkg/buildinfo
package pkg
