// Package graph holds the mutable directed graph that layout requests are
// computed for.
//
// # Overview
//
// A [Graph] owns a set of vertices and the presentation stores their
// geometry is published into:
//
//   - [Graph.VertexTable]: one row per vertex (id, x, y, width, height,
//     plus caller attributes)
//   - [Graph.EdgeTable]: one row per rendered edge (polyline, head_id,
//     tail_id), rebuilt wholesale on every layout pass
//   - [Graph.Record]: the overall layout bounding box (width, height)
//
// Vertices are created through [Graph.CreateVertex] and wired into a
// directed structure with [Vertex.AddChild]. Cycles are allowed; the
// structure is a general directed graph, not a DAG.
//
// # Ids
//
// Vertex ids are allocated from a per-graph counter and encoded into a
// compact token over the letters 'A' through 'H', so they never need
// quoting in the layout engine's grammar. Ids are unique within one
// Graph only.
//
// # Units
//
// A vertex carries two kinds of geometry. Its size in inches
// ([Vertex.SetSize]) is the input to the next layout request. Its
// device-space placement ([Vertex.Bounds]) is whatever the last layout
// pass produced, starting from the placeholder (0, 0, 1, 1).
//
// # Concurrency
//
// Graph and Vertex are not safe for concurrent mutation. Callers that
// layout asynchronously must not mutate the structure while a request
// is in flight.
package graph
