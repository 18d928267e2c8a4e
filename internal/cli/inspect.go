package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/sdankbar/jaqumal-graph/pkg/graph"
	gio "github.com/sdankbar/jaqumal-graph/pkg/io"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// inspectCommand creates the inspect command for browsing layout results.
func (c *CLI) inspectCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "inspect [graph.json]",
		Short: "Browse a laid-out graph's vertex and edge rows",
		Long: `Compute the layout for a graph description and browse the published
vertex and edge rows in an interactive table.

Tab switches between the vertex and edge tables, enter opens a detail
view for the selected row.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			g, err := gio.ImportGraph(args[0], graph.Options{DPI: flags.resolveDPI(cmd, cfg)})
			if err != nil {
				return fmt.Errorf("load graph %s: %w", args[0], err)
			}

			if _, err := c.runLayout(cmd.Context(), g, cfg, flags, false); err != nil {
				return err
			}

			p := tea.NewProgram(NewGraphInspectModel(g))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)

	return cmd
}

// =============================================================================
// GraphInspectModel - Interactive row store browser
// =============================================================================

// Inspector tabs.
const (
	tabVertices = iota
	tabEdges
)

// inspectRow is one table line plus the expanded detail fields.
type inspectRow struct {
	cells  []string
	detail [][2]string
}

// GraphInspectModel is the bubbletea model browsing the published vertex
// and edge row stores.
type GraphInspectModel struct {
	Vertices []inspectRow
	Edges    []inspectRow

	Tab    int
	Cursor int
	Offset int
	Height int
	Detail bool

	dpi    float64
	width  float64
	height float64
}

// NewGraphInspectModel snapshots the graph's row stores into a browsable
// model.
func NewGraphInspectModel(g *graph.Graph) GraphInspectModel {
	m := GraphInspectModel{Height: 15, dpi: g.DPI()}

	record := g.Record()
	if v, ok := record.Get(graph.KeyWidth); ok {
		m.width, _ = v.AsReal()
	}
	if v, ok := record.Get(graph.KeyHeight); ok {
		m.height, _ = v.AsReal()
	}

	for _, row := range g.VertexTable().Snapshot() {
		m.Vertices = append(m.Vertices, vertexRow(row))
	}
	for _, row := range g.EdgeTable().Snapshot() {
		m.Edges = append(m.Edges, edgeRow(row))
	}

	return m
}

func vertexRow(row map[string]variant.Value) inspectRow {
	id := stringField(row, graph.KeyID)
	x := realField(row, graph.KeyX)
	y := realField(row, graph.KeyY)
	w := realField(row, graph.KeyWidth)
	h := realField(row, graph.KeyHeight)

	r := inspectRow{
		cells: []string{
			id,
			fmt.Sprintf("%.1f", x),
			fmt.Sprintf("%.1f", y),
			fmt.Sprintf("%.1f", w),
			fmt.Sprintf("%.1f", h),
		},
		detail: [][2]string{
			{"id", id},
			{"x", fmt.Sprintf("%g", x)},
			{"y", fmt.Sprintf("%g", y)},
			{"width", fmt.Sprintf("%g", w)},
			{"height", fmt.Sprintf("%g", h)},
		},
	}
	for key, value := range row {
		switch key {
		case graph.KeyID, graph.KeyX, graph.KeyY, graph.KeyWidth, graph.KeyHeight:
			continue
		}
		r.detail = append(r.detail, [2]string{key, fmt.Sprintf("%v", value.Interface())})
	}
	return r
}

func edgeRow(row map[string]variant.Value) inspectRow {
	tail := stringField(row, graph.KeyTailID)
	head := stringField(row, graph.KeyHeadID)

	points := 0
	var polyline string
	if v, ok := row[graph.KeyPolyline]; ok {
		if pts, ok := v.AsPointList(); ok {
			points = len(pts)
			segments := make([]string, len(pts))
			for i, p := range pts {
				segments[i] = fmt.Sprintf("(%.1f, %.1f)", p.X, p.Y)
			}
			polyline = strings.Join(segments, " ")
		}
	}

	return inspectRow{
		cells: []string{tail, head, fmt.Sprintf("%d", points)},
		detail: [][2]string{
			{"tail", tail},
			{"head", head},
			{"points", fmt.Sprintf("%d", points)},
			{"polyline", polyline},
		},
	}
}

func stringField(row map[string]variant.Value, key string) string {
	if v, ok := row[key]; ok {
		if s, ok := v.AsString(); ok {
			return s
		}
	}
	return ""
}

func realField(row map[string]variant.Value, key string) float64 {
	if v, ok := row[key]; ok {
		if f, ok := v.AsReal(); ok {
			return f
		}
	}
	return 0
}

// rows returns the row set for the active tab.
func (m GraphInspectModel) rows() []inspectRow {
	if m.Tab == tabEdges {
		return m.Edges
	}
	return m.Vertices
}

func (m GraphInspectModel) Init() tea.Cmd {
	return nil
}

func (m GraphInspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "tab":
			if m.Detail {
				return m, nil
			}
			m.Tab = (m.Tab + 1) % 2
			m.Cursor = 0
			m.Offset = 0
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.rows())-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.rows()) > 0 {
				m.Detail = !m.Detail
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m GraphInspectModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Graph Inspector"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%.0fx%.0f at %g dpi", m.width, m.height, m.dpi)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("tab: switch  ↑/↓ navigate  ⏎ detail  q quit"))
	b.WriteString("\n\n")

	if m.Detail {
		b.WriteString(m.detailView())
		return b.String()
	}

	b.WriteString(m.tableView())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.rows()))))

	return b.String()
}

func (m GraphInspectModel) tableView() string {
	headers := []string{"", "ID", "X", "Y", "Width", "Height"}
	if m.Tab == tabEdges {
		headers = []string{"", "Tail", "Head", "Points"}
	}

	rows := m.rows()
	end := m.Offset + m.Height
	if end > len(rows) {
		end = len(rows)
	}

	lines := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		lines = append(lines, append([]string{cursor}, rows[i].cells...))
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(lines...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	return t.Render()
}

func (m GraphInspectModel) detailView() string {
	rows := m.rows()
	if m.Cursor >= len(rows) {
		return ""
	}

	var b strings.Builder
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for _, kv := range rows[m.Cursor].detail {
		b.WriteString("  ")
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(" ")
		b.WriteString(StyleValue.Render(kv[1]))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  esc back"))
	return b.String()
}
