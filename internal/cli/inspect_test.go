package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// buildInspectGraph fakes a laid-out graph: vertices carry bounds, the
// edge table holds one polyline row.
func buildInspectGraph(t *testing.T) *graph.Graph {
	t.Helper()

	g, err := graph.New(graph.Options{DPI: 1})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	a, err := g.CreateVertex(1, 1, map[string]variant.Value{"label": variant.StringVal("start")})
	if err != nil {
		t.Fatalf("CreateVertex: %v", err)
	}
	b, err := g.CreateVertex(1, 1, nil)
	if err != nil {
		t.Fatalf("CreateVertex: %v", err)
	}
	if err := a.AddChild(b); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := a.SetBounds(geom.Rect{X: 1, Y: 0.5, Width: 1, Height: 1}); err != nil {
		t.Fatalf("SetBounds: %v", err)
	}

	g.EdgeTable().Append(map[string]variant.Value{
		graph.KeyTailID: variant.StringVal(a.ID()),
		graph.KeyHeadID: variant.StringVal(b.ID()),
		graph.KeyPolyline: variant.PointListVal([]geom.Point{
			{X: 1.5, Y: 1.5},
			{X: 1.5, Y: 2.5},
		}),
	})

	return g
}

func TestNewGraphInspectModel(t *testing.T) {
	m := NewGraphInspectModel(buildInspectGraph(t))

	if len(m.Vertices) != 2 {
		t.Fatalf("len(Vertices) = %d, want 2", len(m.Vertices))
	}
	if len(m.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(m.Edges))
	}
	if m.Tab != tabVertices {
		t.Errorf("initial tab = %d, want vertices", m.Tab)
	}

	// The laid-out vertex row reports its top-left corner.
	if m.Vertices[0].cells[0] != "C" {
		t.Errorf("vertex cell id = %q, want C", m.Vertices[0].cells[0])
	}
	if m.Vertices[0].cells[1] != "1.0" {
		t.Errorf("vertex cell x = %q, want 1.0", m.Vertices[0].cells[1])
	}

	edge := m.Edges[0]
	if edge.cells[0] != "C" || edge.cells[1] != "D" {
		t.Errorf("edge cells = %v, want C D", edge.cells[:2])
	}
	if edge.cells[2] != "2" {
		t.Errorf("edge point count = %q, want 2", edge.cells[2])
	}
}

func TestGraphInspectModelNavigation(t *testing.T) {
	m := NewGraphInspectModel(buildInspectGraph(t))

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(GraphInspectModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after down = %d, want 1", m.Cursor)
	}

	// Cursor clamps at the last row.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(GraphInspectModel)
	if m.Cursor != 1 {
		t.Errorf("cursor after second down = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(GraphInspectModel)
	if m.Tab != tabEdges {
		t.Errorf("tab after switch = %d, want edges", m.Tab)
	}
	if m.Cursor != 0 {
		t.Errorf("cursor after switch = %d, want 0", m.Cursor)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GraphInspectModel)
	if !m.Detail {
		t.Error("enter should open the detail view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(GraphInspectModel)
	if m.Detail {
		t.Error("esc should close the detail view")
	}
}

func TestGraphInspectModelQuit(t *testing.T) {
	m := NewGraphInspectModel(buildInspectGraph(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
}

func TestGraphInspectModelView(t *testing.T) {
	m := NewGraphInspectModel(buildInspectGraph(t))

	view := m.View()
	if !strings.Contains(view, "Graph Inspector") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "[1/2]") {
		t.Errorf("view missing position indicator: %q", view)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(GraphInspectModel)
	detail := m.View()
	if !strings.Contains(detail, "start") {
		t.Error("detail view missing label attribute value")
	}
}
