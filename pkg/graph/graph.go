package graph

import (
	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/sink"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// Presentation column names. The vertex table owns the first five, the
// edge table the last three; KeyWidth and KeyHeight double as the graph
// record's bounding-box keys.
const (
	KeyID       = "id"
	KeyX        = "x"
	KeyY        = "y"
	KeyWidth    = "width"
	KeyHeight   = "height"
	KeyPolyline = "polyline"
	KeyHeadID   = "head_id"
	KeyTailID   = "tail_id"
)

// DefaultDPI is the device scale used when Options leaves DPI unset.
const DefaultDPI = 96.0

// Options configures a Graph.
type Options struct {
	// DPI converts the layout engine's inch-based geometry into device
	// units. Zero selects DefaultDPI.
	DPI float64
}

// Graph is a mutable directed graph publishing into presentation stores.
// It is not safe for concurrent mutation.
type Graph struct {
	dpi      float64
	ids      *idAllocator
	vertices []*Vertex
	byID     map[string]*Vertex

	vertexTable *sink.Table
	edgeTable   *sink.Table
	record      *sink.Record
}

// New creates an empty graph.
func New(opts Options) (*Graph, error) {
	dpi := opts.DPI
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if err := errors.ValidateDPI(dpi); err != nil {
		return nil, err
	}

	g := &Graph{
		dpi:         dpi,
		ids:         newIDAllocator(),
		byID:        make(map[string]*Vertex),
		vertexTable: sink.NewTable(),
		edgeTable:   sink.NewTable(),
		record:      sink.NewRecord(),
	}
	g.seedRecord()
	return g, nil
}

// DPI returns the device scale layout results are published at.
func (g *Graph) DPI() float64 { return g.dpi }

// VertexCount returns the number of attached vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns the attached vertices in creation order.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// Vertex returns the attached vertex with the given id.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.byID[id]
	return v, ok
}

// VertexTable returns the presentation rows for vertices, one per vertex
// in creation order.
func (g *Graph) VertexTable() *sink.Table { return g.vertexTable }

// EdgeTable returns the presentation rows for rendered edges. Layout
// passes clear and rebuild it wholesale.
func (g *Graph) EdgeTable() *sink.Table { return g.edgeTable }

// Record returns the whole-graph record holding the layout bounding box.
func (g *Graph) Record() *sink.Record { return g.record }

// CreateVertex adds a vertex with the given size in inches and optional
// initial attributes. The new presentation row starts at the placeholder
// placement (0, 0, 1, 1); nothing is mutated when validation fails.
func (g *Graph) CreateVertex(widthInches, heightInches float64, attrs map[string]variant.Value) (*Vertex, error) {
	if err := errors.ValidateSize(widthInches, heightInches); err != nil {
		return nil, err
	}
	for key := range attrs {
		if err := errors.ValidateAttributeKey(key); err != nil {
			return nil, err
		}
		if isReservedKey(key) {
			return nil, errors.New(errors.ErrCodeInvalidKey, "key %q is reserved for layout geometry", key)
		}
	}

	id := g.ids.next()
	values := map[string]variant.Value{
		KeyID:     variant.StringVal(id),
		KeyX:      variant.RealVal(0),
		KeyY:      variant.RealVal(0),
		KeyWidth:  variant.RealVal(1),
		KeyHeight: variant.RealVal(1),
	}
	for key, value := range attrs {
		values[key] = value
	}

	v := &Vertex{
		id:           id,
		graph:        g,
		widthInches:  widthInches,
		heightInches: heightInches,
		row:          g.vertexTable.Append(values),
		childSet:     make(map[*Vertex]struct{}),
		parentSet:    make(map[*Vertex]struct{}),
	}
	g.vertices = append(g.vertices, v)
	g.byID[id] = v
	return v, nil
}

// RemoveVertex detaches v from the graph: every neighbor's reference to
// it is severed, its presentation row is removed, and the vertex itself
// is invalidated. It reports false when v is not a member.
func (g *Graph) RemoveVertex(v *Vertex) (bool, error) {
	if v == nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "vertex is nil")
	}
	if v.graph == nil {
		return false, nil
	}
	if v.graph != g {
		return false, errors.New(errors.ErrCodeInvalidGraph, "vertex %s belongs to a different graph", v.id)
	}

	for _, parent := range v.Parents() {
		parent.detachChild(v)
	}
	for _, child := range v.Children() {
		child.detachParent(v)
	}

	g.vertices = removeFromList(g.vertices, v)
	delete(g.byID, v.id)

	id := variant.StringVal(v.id)
	g.vertexTable.Remove(func(row *sink.Row) bool {
		got, ok := row.Get(KeyID)
		return ok && got.Equal(id)
	})

	v.invalidate()
	return true, nil
}

// Clear detaches every vertex and resets the presentation stores. The id
// counter keeps running, so ids are never reused within one graph.
func (g *Graph) Clear() {
	for _, v := range g.vertices {
		v.invalidate()
	}
	g.vertices = nil
	g.byID = make(map[string]*Vertex)

	g.vertexTable.Clear()
	g.edgeTable.Clear()
	g.record.Clear()
	g.seedRecord()
}

// seedRecord publishes the placeholder one-inch bounding box.
func (g *Graph) seedRecord() {
	_ = g.record.Put(KeyWidth, variant.RealVal(g.dpi))
	_ = g.record.Put(KeyHeight, variant.RealVal(g.dpi))
}

func isReservedKey(key string) bool {
	switch key {
	case KeyID, KeyX, KeyY, KeyWidth, KeyHeight:
		return true
	}
	return false
}
