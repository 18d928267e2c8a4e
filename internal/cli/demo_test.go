package cli

import (
	"testing"

	"github.com/sdankbar/jaqumal-graph/pkg/graph"
)

func TestDemoGraphShape(t *testing.T) {
	g, err := demoGraph(96)
	if err != nil {
		t.Fatalf("demoGraph() error: %v", err)
	}

	if got := g.VertexCount(); got != 6 {
		t.Fatalf("VertexCount() = %d, want 6", got)
	}
	if got := edgeCount(g); got != 7 {
		t.Errorf("edgeCount() = %d, want 7", got)
	}

	vertices := g.Vertices()
	for i, v := range vertices {
		if v.WidthInches() != 1 || v.HeightInches() != 1 {
			t.Errorf("vertex %d size = %gx%g inches, want 1x1", i, v.WidthInches(), v.HeightInches())
		}
		label, ok := v.Get("label")
		if !ok {
			t.Errorf("vertex %d has no label attribute", i)
			continue
		}
		if s, _ := label.AsString(); s == "" {
			t.Errorf("vertex %d label is empty", i)
		}
	}

	// The v2/v3 cycle must be present in both directions.
	v2, v3 := vertices[1], vertices[2]
	if !hasChild(v2, v3) {
		t.Error("demo graph missing edge v2 -> v3")
	}
	if !hasChild(v3, v2) {
		t.Error("demo graph missing edge v3 -> v2")
	}

	// v3 fans out to v4, v5, v6.
	for i := 3; i < 6; i++ {
		if !hasChild(v3, vertices[i]) {
			t.Errorf("demo graph missing edge v3 -> v%d", i+1)
		}
	}
}

func hasChild(parent, child *graph.Vertex) bool {
	for _, c := range parent.Children() {
		if c == child {
			return true
		}
	}
	return false
}
