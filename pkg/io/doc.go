// Package io provides JSON import and export for graph descriptions and
// layout results.
//
// # Description Format
//
// A description is a JSON object with a "vertices" array and an optional
// "edges" array:
//
//	{
//	  "dpi": 96,
//	  "vertices": [
//	    {"id": "a", "width": 1.0, "height": 0.5, "attributes": {"label": "app"}},
//	    {"id": "b", "width": 1.0, "height": 0.5}
//	  ],
//	  "edges": [
//	    {"tail_id": "a", "head_id": "b"}
//	  ]
//	}
//
// Vertex sizes are in inches. The "id" field is a file-scoped name used
// only to wire edges; the imported graph allocates its own vertex ids.
// Edges may reference vertices by that name ("tail_id"/"head_id") or by
// zero-based position in the vertices array ("tail"/"head"). Attribute
// values may be strings, numbers, or booleans.
//
// Use [ImportGraph] to read a description from a file, or [ReadGraph] to
// read from any io.Reader. Both validate edge references and return the
// first offending vertex or edge in the error.
//
// # Layout Format
//
// [WriteLayout] and [ExportLayout] serialize the laid-out state: the
// graph bounding box, per-vertex placements, and per-edge polylines, all
// in device units. [WriteGraph] and [ExportGraph] write the description
// form back out, so a description can be imported, laid out, exported,
// and re-imported.
package io
