package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

type description struct {
	DPI      float64      `json:"dpi,omitempty"`
	Vertices []vertexDesc `json:"vertices"`
	Edges    []edgeDesc   `json:"edges,omitempty"`
}

type vertexDesc struct {
	ID         string         `json:"id,omitempty"`
	Width      float64        `json:"width"`
	Height     float64        `json:"height"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type edgeDesc struct {
	Tail   *int   `json:"tail,omitempty"`
	Head   *int   `json:"head,omitempty"`
	TailID string `json:"tail_id,omitempty"`
	HeadID string `json:"head_id,omitempty"`
}

type layoutDoc struct {
	DPI      float64        `json:"dpi"`
	Width    float64        `json:"width"`
	Height   float64        `json:"height"`
	Vertices []layoutVertex `json:"vertices"`
	Edges    []layoutEdge   `json:"edges,omitempty"`
}

type layoutVertex struct {
	ID         string         `json:"id"`
	Bounds     geom.Rect      `json:"bounds"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type layoutEdge struct {
	TailID   string       `json:"tail_id"`
	HeadID   string       `json:"head_id"`
	Polyline []geom.Point `json:"polyline"`
}

// WriteGraph encodes the graph's description (sizes in inches, edges by
// vertex id) as JSON and writes it to w. The output can be re-imported
// with [ReadGraph].
func WriteGraph(g *graph.Graph, w io.Writer) error {
	out := description{DPI: g.DPI()}

	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, vertexDesc{
			ID:         v.ID(),
			Width:      v.WidthInches(),
			Height:     v.HeightInches(),
			Attributes: attributeInterfaces(v.Attributes()),
		})
	}
	for _, v := range g.Vertices() {
		for _, child := range v.Children() {
			out.Edges = append(out.Edges, edgeDesc{TailID: v.ID(), HeadID: child.ID()})
		}
	}

	return encodeIndented(w, out)
}

// ExportGraph writes the graph's description to a JSON file at path.
func ExportGraph(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// WriteLayout encodes the laid-out state (graph bounding box, vertex
// placements, edge polylines, all in device units) as JSON and writes
// it to w.
func WriteLayout(g *graph.Graph, w io.Writer) error {
	out := layoutDoc{DPI: g.DPI()}

	record := g.Record()
	if v, ok := record.Get(graph.KeyWidth); ok {
		out.Width, _ = v.AsReal()
	}
	if v, ok := record.Get(graph.KeyHeight); ok {
		out.Height, _ = v.AsReal()
	}

	for _, v := range g.Vertices() {
		out.Vertices = append(out.Vertices, layoutVertex{
			ID:         v.ID(),
			Bounds:     v.Bounds(),
			Attributes: attributeInterfaces(v.Attributes()),
		})
	}

	edges := g.EdgeTable()
	for i := 0; i < edges.Len(); i++ {
		row, ok := edges.RowAt(i)
		if !ok {
			continue
		}
		e := layoutEdge{}
		if v, ok := row.Get(graph.KeyTailID); ok {
			e.TailID, _ = v.AsString()
		}
		if v, ok := row.Get(graph.KeyHeadID); ok {
			e.HeadID, _ = v.AsString()
		}
		if v, ok := row.Get(graph.KeyPolyline); ok {
			e.Polyline, _ = v.AsPointList()
		}
		out.Edges = append(out.Edges, e)
	}

	return encodeIndented(w, out)
}

// ExportLayout writes the laid-out state to a JSON file at path.
func ExportLayout(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(g, f)
}

func encodeIndented(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func attributeInterfaces(attrs map[string]variant.Value) map[string]any {
	if len(attrs) == 0 {
		return nil
	}
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		out[key] = value.Interface()
	}
	return out
}
