package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// ReadGraph decodes a JSON graph description from r into a new graph.
//
// opts.DPI zero means the description's "dpi" field applies, falling back
// to the package default when the description omits it too.
//
// ReadGraph returns an error if the JSON is malformed, a vertex size or
// attribute is invalid, two vertices declare the same id, or an edge
// references an unknown vertex. Errors name the offending vertex or edge.
func ReadGraph(r io.Reader, opts graph.Options) (*graph.Graph, error) {
	var data description
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	if opts.DPI == 0 {
		opts.DPI = data.DPI
	}
	g, err := graph.New(opts)
	if err != nil {
		return nil, err
	}

	vertices := make([]*graph.Vertex, 0, len(data.Vertices))
	byName := make(map[string]*graph.Vertex, len(data.Vertices))
	for i, vd := range data.Vertices {
		attrs, err := attributeValues(vd.Attributes)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		v, err := g.CreateVertex(vd.Width, vd.Height, attrs)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		if vd.ID != "" {
			if _, dup := byName[vd.ID]; dup {
				return nil, fmt.Errorf("vertex %d: duplicate id %q", i, vd.ID)
			}
			byName[vd.ID] = v
		}
		vertices = append(vertices, v)
	}

	for i, ed := range data.Edges {
		tail, err := resolveEndpoint("tail", ed.TailID, ed.Tail, byName, vertices)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		head, err := resolveEndpoint("head", ed.HeadID, ed.Head, byName, vertices)
		if err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
		if err := tail.AddChild(head); err != nil {
			return nil, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	return g, nil
}

// ImportGraph reads a JSON description file at path and returns the
// decoded graph.
func ImportGraph(path string, opts graph.Options) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f, opts)
}

func resolveEndpoint(role, id string, index *int, byName map[string]*graph.Vertex, vertices []*graph.Vertex) (*graph.Vertex, error) {
	if id != "" {
		v, ok := byName[id]
		if !ok {
			return nil, fmt.Errorf("%s references unknown vertex %q", role, id)
		}
		return v, nil
	}
	if index != nil {
		if *index < 0 || *index >= len(vertices) {
			return nil, fmt.Errorf("%s index %d out of range", role, *index)
		}
		return vertices[*index], nil
	}
	return nil, fmt.Errorf("%s is missing", role)
}

func attributeValues(attrs map[string]any) (map[string]variant.Value, error) {
	if len(attrs) == 0 {
		return nil, nil
	}
	out := make(map[string]variant.Value, len(attrs))
	for key, raw := range attrs {
		switch v := raw.(type) {
		case bool:
			out[key] = variant.BoolVal(v)
		case float64:
			out[key] = variant.RealVal(v)
		case string:
			out[key] = variant.StringVal(v)
		default:
			return nil, fmt.Errorf("attribute %s: unsupported value of type %T", key, raw)
		}
	}
	return out, nil
}
