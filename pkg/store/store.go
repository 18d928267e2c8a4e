// Package store persists named layout documents.
//
// # Architecture
//
// A [Layout] snapshots one graph: its description (sizes, attributes,
// edges) plus the geometry computed by the last layout pass. The [Store]
// interface provides named CRUD over those documents with two backends:
//   - memory: in-process storage for development and tests
//   - mongo: MongoDB-backed storage for the HTTP server
//
// # Usage
//
// Snapshot a graph and save it:
//
//	doc := store.Snapshot(g, "checkout-flow")
//	if err := st.Save(ctx, doc); err != nil {
//	    return err
//	}
//
// Load it back into a fresh graph:
//
//	doc, err := st.Load(ctx, "checkout-flow")
//	if err != nil {
//	    return err
//	}
//	g, err := doc.Restore(graph.Options{})
package store

import (
	"context"
	"time"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// Layout is the stored form of one graph with its computed geometry.
type Layout struct {
	Name    string    `json:"name,omitempty" bson:"_id"`
	SavedAt time.Time `json:"saved_at" bson:"saved_at"`

	DPI    float64 `json:"dpi" bson:"dpi"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	Vertices []Vertex `json:"vertices" bson:"vertices"`
	Edges    []Edge   `json:"edges,omitempty" bson:"edges,omitempty"`
}

// Vertex stores one vertex's requested size, caller attributes, and the
// device-space placement from the last layout pass.
type Vertex struct {
	ID           string                     `json:"id" bson:"id"`
	WidthInches  float64                    `json:"width_inches" bson:"width_inches"`
	HeightInches float64                    `json:"height_inches" bson:"height_inches"`
	Bounds       geom.Rect                  `json:"bounds" bson:"bounds"`
	Attributes   map[string]variant.Encoded `json:"attributes,omitempty" bson:"attributes,omitempty"`
}

// Edge stores one edge by vertex id, with its polyline when a layout
// pass has produced one.
type Edge struct {
	TailID   string       `json:"tail_id" bson:"tail_id"`
	HeadID   string       `json:"head_id" bson:"head_id"`
	Polyline []geom.Point `json:"polyline,omitempty" bson:"polyline,omitempty"`
}

// Store is the interface for layout document backends.
type Store interface {
	// Save stores the document, replacing any document with the same name.
	Save(ctx context.Context, doc *Layout) error

	// Load retrieves a document by name.
	Load(ctx context.Context, name string) (*Layout, error)

	// List returns the stored names in lexical order.
	List(ctx context.Context) ([]string, error)

	// Delete removes a document by name.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// Snapshot captures the graph's description and current geometry under
// the given name.
func Snapshot(g *graph.Graph, name string) *Layout {
	doc := &Layout{
		Name:    name,
		SavedAt: time.Now().UTC(),
		DPI:     g.DPI(),
	}

	record := g.Record()
	if v, ok := record.Get(graph.KeyWidth); ok {
		doc.Width, _ = v.AsReal()
	}
	if v, ok := record.Get(graph.KeyHeight); ok {
		doc.Height, _ = v.AsReal()
	}

	for _, v := range g.Vertices() {
		doc.Vertices = append(doc.Vertices, Vertex{
			ID:           v.ID(),
			WidthInches:  v.WidthInches(),
			HeightInches: v.HeightInches(),
			Bounds:       v.Bounds(),
			Attributes:   encodeAttributes(v.Attributes()),
		})
	}

	polylines := make(map[[2]string][]geom.Point)
	edges := g.EdgeTable()
	for i := 0; i < edges.Len(); i++ {
		row, ok := edges.RowAt(i)
		if !ok {
			continue
		}
		var tail, head string
		if v, ok := row.Get(graph.KeyTailID); ok {
			tail, _ = v.AsString()
		}
		if v, ok := row.Get(graph.KeyHeadID); ok {
			head, _ = v.AsString()
		}
		if v, ok := row.Get(graph.KeyPolyline); ok {
			points, _ := v.AsPointList()
			polylines[[2]string{tail, head}] = points
		}
	}
	for _, v := range g.Vertices() {
		for _, child := range v.Children() {
			doc.Edges = append(doc.Edges, Edge{
				TailID:   v.ID(),
				HeadID:   child.ID(),
				Polyline: polylines[[2]string{v.ID(), child.ID()}],
			})
		}
	}

	return doc
}

// Restore builds a fresh graph from the document, including the stored
// geometry. opts.DPI zero means the document's scale applies.
func (l *Layout) Restore(opts graph.Options) (*graph.Graph, error) {
	if opts.DPI == 0 {
		opts.DPI = l.DPI
	}
	g, err := graph.New(opts)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*graph.Vertex, len(l.Vertices))
	for _, vd := range l.Vertices {
		attrs, err := decodeAttributes(vd.Attributes)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidValue, err, "vertex %s", vd.ID)
		}
		v, err := g.CreateVertex(vd.WidthInches, vd.HeightInches, attrs)
		if err != nil {
			return nil, errors.Wrap(errors.GetCode(err), err, "vertex %s", vd.ID)
		}
		if _, dup := byID[vd.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidValue, "duplicate vertex id %s", vd.ID)
		}
		byID[vd.ID] = v
		if err := v.SetBounds(vd.Bounds); err != nil {
			return nil, err
		}
	}

	for _, ed := range l.Edges {
		tail, ok := byID[ed.TailID]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidValue, "edge references unknown vertex %s", ed.TailID)
		}
		head, ok := byID[ed.HeadID]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidValue, "edge references unknown vertex %s", ed.HeadID)
		}
		if err := tail.AddChild(head); err != nil {
			return nil, err
		}
		if len(ed.Polyline) > 0 {
			g.EdgeTable().Append(map[string]variant.Value{
				graph.KeyPolyline: variant.PointListVal(ed.Polyline),
				graph.KeyHeadID:   variant.StringVal(ed.HeadID),
				graph.KeyTailID:   variant.StringVal(ed.TailID),
			})
		}
	}

	record := g.Record()
	if l.Width > 0 {
		_ = record.Put(graph.KeyWidth, variant.RealVal(l.Width))
	}
	if l.Height > 0 {
		_ = record.Put(graph.KeyHeight, variant.RealVal(l.Height))
	}

	return g, nil
}

func encodeAttributes(attrs map[string]variant.Value) map[string]variant.Encoded {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]variant.Encoded, len(attrs))
	for key, value := range attrs {
		out[key] = value.Encode()
	}
	return out
}

func decodeAttributes(attrs map[string]variant.Encoded) (map[string]variant.Value, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	out := make(map[string]variant.Value, len(attrs))
	for key, encoded := range attrs {
		value, err := variant.Decode(encoded)
		if err != nil {
			return nil, err
		}
		out[key] = value
	}
	return out, nil
}
