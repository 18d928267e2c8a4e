// Package dot serializes a graph into the text grammar consumed by the
// layout engine.
package dot

import (
	"strconv"
	"strings"

	"github.com/sdankbar/jaqumal-graph/pkg/graph"
)

// Encode renders the graph as a directed-graph document. Each vertex
// yields one node statement carrying its size in inches and a box shape
// hint; each vertex with children yields one edge statement listing all
// children, with the engine's own arrowhead rendering suppressed so the
// computed arrowhead is the only one drawn. Statements follow vertex
// creation order.
func Encode(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("digraph {\n")
	if g != nil {
		for _, v := range g.Vertices() {
			writeVertex(&b, v)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func writeVertex(b *strings.Builder, v *graph.Vertex) {
	b.WriteString(v.ID())
	b.WriteString(" [width=")
	b.WriteString(formatLength(v.WidthInches()))
	b.WriteString(" height=")
	b.WriteString(formatLength(v.HeightInches()))
	b.WriteString(" shape=box]\n")

	children := v.Children()
	if len(children) == 0 {
		return
	}
	b.WriteString(v.ID())
	b.WriteString(" -> {")
	for i, child := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(child.ID())
	}
	b.WriteString("} [arrowhead=none]\n")
}

// formatLength renders a size in inches without exponent notation, which
// the engine's attribute grammar does not accept.
func formatLength(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
