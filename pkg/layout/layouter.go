package layout

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sdankbar/jaqumal-graph/pkg/cache"
	"github.com/sdankbar/jaqumal-graph/pkg/dot"
	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/observability"
	"github.com/sdankbar/jaqumal-graph/pkg/plain"
	"github.com/sdankbar/jaqumal-graph/pkg/spline"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// DefaultCacheTTL bounds how long cached engine output stays reusable.
const DefaultCacheTTL = 24 * time.Hour

// Options configures a Runner.
type Options struct {
	// Engine configures the external process.
	Engine EngineOptions

	// Cache stores raw engine output keyed by input document hash. Nil
	// disables caching.
	Cache cache.Cache

	// Keyer builds cache keys. Nil selects the default keyer.
	Keyer cache.Keyer

	// CacheTTL bounds cached engine output. Zero selects DefaultCacheTTL.
	CacheTTL time.Duration

	// Polyline tunes edge sampling and arrowhead size.
	Polyline spline.PolylineOptions

	// Logger receives debug and error logs. Nil discards them.
	Logger *log.Logger
}

// Runner drives the layout pipeline for one graph. Each Runner owns a
// dedicated worker goroutine that serializes asynchronous requests;
// Close releases it.
type Runner struct {
	graph    *graph.Graph
	engine   *Engine
	cache    cache.Cache
	keyer    cache.Keyer
	ttl      time.Duration
	polyline spline.PolylineOptions
	logger   *log.Logger
	worker   *worker
}

// NewRunner creates a runner for the given graph.
func NewRunner(g *graph.Graph, opts Options) (*Runner, error) {
	if g == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph is nil")
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	store := opts.Cache
	if store == nil {
		store = cache.NewNullCache()
	}
	keyer := opts.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	ttl := opts.CacheTTL
	if ttl == 0 {
		ttl = DefaultCacheTTL
	}

	return &Runner{
		graph:    g,
		engine:   NewEngine(opts.Engine),
		cache:    store,
		keyer:    keyer,
		ttl:      ttl,
		polyline: opts.Polyline,
		logger:   logger,
		worker:   newWorker(),
	}, nil
}

// Graph returns the graph this runner lays out.
func (r *Runner) Graph() *graph.Graph { return r.graph }

// Close stops the worker after draining queued requests. The runner
// must not be used afterwards.
func (r *Runner) Close() {
	r.worker.close()
}

// Layout synchronously runs the full encode, engine, parse, apply
// sequence, blocking until results are published.
func (r *Runner) Layout(ctx context.Context) error {
	document := dot.Encode(r.graph)
	requestID := uuid.NewString()
	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, requestID, r.graph.VertexCount())

	result, err := r.roundTrip(ctx, requestID, document)
	if err == nil {
		err = r.apply(result)
	}

	observability.Layout().OnLayoutComplete(ctx, requestID, time.Since(start), err)
	if err != nil {
		r.logger.Error("layout failed", "request", requestID, "err", err)
		return err
	}
	r.logger.Debug("layout applied", "request", requestID, "duration", time.Since(start))
	return nil
}

// LayoutAsync runs the engine round trip on the runner's worker and
// schedules the apply phase onto exec; a nil exec applies on the worker
// itself. The graph is encoded before LayoutAsync returns, so the
// request reflects the structure as it existed at the call. The
// returned channel delivers the outcome exactly once, after the apply
// phase has run, and is then closed. Vertex geometry keeps its previous
// values until that apply runs.
func (r *Runner) LayoutAsync(ctx context.Context, exec Executor) <-chan error {
	done := make(chan error, 1)
	document := dot.Encode(r.graph)
	requestID := uuid.NewString()
	if exec == nil {
		exec = ExecutorFunc(func(fn func()) { fn() })
	}

	start := time.Now()
	observability.Layout().OnLayoutStart(ctx, requestID, r.graph.VertexCount())

	finish := func(err error) {
		observability.Layout().OnLayoutComplete(ctx, requestID, time.Since(start), err)
		if err != nil {
			r.logger.Error("layout failed", "request", requestID, "err", err)
		} else {
			r.logger.Debug("layout applied", "request", requestID, "duration", time.Since(start))
		}
		done <- err
		close(done)
	}

	submitErr := r.worker.submit(func() {
		result, err := r.roundTrip(ctx, requestID, document)
		exec.Execute(func() {
			if err == nil {
				err = r.apply(result)
			}
			finish(err)
		})
	})
	if submitErr != nil {
		finish(submitErr)
	}
	return done
}

// roundTrip produces parsed engine output for the document, consulting
// the cache first.
func (r *Runner) roundTrip(ctx context.Context, requestID, document string) (*plain.Result, error) {
	key := r.keyer.EngineKey(cache.Hash([]byte(document)))

	text, hit := r.cachedOutput(ctx, key)
	if !hit {
		observability.Layout().OnEngineStart(ctx, requestID)
		engineStart := time.Now()
		out, err := r.engine.Run(ctx, document)
		observability.Layout().OnEngineComplete(ctx, requestID, len(out), time.Since(engineStart), err)
		if err != nil {
			return nil, err
		}
		text = out

		if err := r.cache.Set(ctx, key, []byte(text), r.ttl); err != nil {
			r.logger.Debug("engine cache write failed", "err", err)
		} else {
			observability.Cache().OnCacheSet(ctx, "engine", len(text))
		}
	}

	return plain.Parse(text, r.graph.DPI())
}

func (r *Runner) cachedOutput(ctx context.Context, key string) (string, bool) {
	data, hit, err := r.cache.Get(ctx, key)
	if err != nil {
		r.logger.Debug("engine cache read failed", "err", err)
		observability.Cache().OnCacheMiss(ctx, "engine")
		return "", false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, "engine")
		return "", false
	}
	observability.Cache().OnCacheHit(ctx, "engine")
	return string(data), true
}

// apply publishes parsed results: vertex placements updated in place,
// the edge table rebuilt wholesale in vertex creation order, and the
// graph record set to the layout bounding box. Nothing is published
// unless the output covers every vertex and every polyline samples
// cleanly.
func (r *Runner) apply(result *plain.Result) error {
	dpi := r.graph.DPI()
	vertices := r.graph.Vertices()

	placements := make(map[string]plain.NodeLayout, len(vertices))
	for _, v := range vertices {
		node, ok := result.Node(v.ID())
		if !ok {
			return errors.New(errors.ErrCodeLayoutIncomplete,
				"engine output does not place vertex %s", v.ID())
		}
		placements[v.ID()] = node
	}

	var edgeRows []map[string]variant.Value
	for _, v := range vertices {
		for _, e := range result.EdgesInto(v.ID()) {
			points, err := e.Curve.Polyline(dpi, r.polyline)
			if err != nil {
				return err
			}
			edgeRows = append(edgeRows, map[string]variant.Value{
				graph.KeyPolyline: variant.PointListVal(points),
				graph.KeyHeadID:   variant.StringVal(e.Head),
				graph.KeyTailID:   variant.StringVal(e.Tail),
			})
		}
	}

	record := r.graph.Record()
	_ = record.Put(graph.KeyWidth, variant.RealVal(result.GraphWidth*dpi))
	_ = record.Put(graph.KeyHeight, variant.RealVal(result.GraphHeight*dpi))

	for _, v := range vertices {
		node := placements[v.ID()]
		err := v.SetBounds(geom.Rect{X: node.X, Y: node.Y, Width: node.Width, Height: node.Height})
		if err != nil {
			return err
		}
	}

	edges := r.graph.EdgeTable()
	edges.Clear()
	for _, row := range edgeRows {
		edges.Append(row)
	}
	return nil
}
