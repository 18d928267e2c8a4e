// Package plain parses the layout engine's "plain" output format.
//
// # Grammar
//
// The format is line oriented with single-space token separation. Three
// statement kinds matter here, with exact token counts:
//
//	graph <scale> <width> <height>                              4 tokens
//	node <id> <cx> <cy> <w> <h> <label> <style> <shape> <c> <c> 11 tokens
//	edge <tail> <head> <n> <x1> <y1> ... <xn> <yn> <style> <c>  4+2n+2 tokens
//
// Any other statement prefix is skipped. A statement with the wrong token
// count or an unparsable numeric field fails the whole parse; callers never
// see partial results.
//
// # Units
//
// Node rectangles and edge control points are converted to device units at
// parse time using the supplied dots-per-inch. Node coordinates also move
// from the engine's center convention to top-left. The graph bounding box
// stays in length units (inches); callers scale it when they apply a layout.
//
// # Indexing
//
// Edges are indexed by head-vertex id because geometry reassembly asks
// "which edges terminate at this vertex". Nodes are indexed by id.
package plain
