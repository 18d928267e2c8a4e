package plain

import (
	"strconv"
	"strings"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/spline"
)

// Token counts fixed by the wire format.
const (
	graphTokenCount = 4
	nodeTokenCount  = 11
	edgeMinTokens   = 6
)

// NodeLayout is the parsed placement of one vertex, in device units with a
// top-left origin.
type NodeLayout struct {
	ID     string
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// EdgeSpline is one parsed edge routing hint. Control points are in device
// units; Curve is the clamped B-spline those points define.
type EdgeSpline struct {
	Tail   string
	Head   string
	Points []geom.Point
	Curve  *spline.BSpline
}

// Result holds a fully parsed plain-format document.
type Result struct {
	// GraphWidth and GraphHeight are the layout bounding box in length
	// units (inches), exactly as the engine reported them.
	GraphWidth  float64
	GraphHeight float64

	nodes map[string]NodeLayout
	edges map[string][]EdgeSpline
}

// Node returns the layout record for the given vertex id.
func (r *Result) Node(id string) (NodeLayout, bool) {
	n, ok := r.nodes[id]
	return n, ok
}

// EdgesInto returns all edges whose head is the given vertex id, in the
// order the engine emitted them.
func (r *Result) EdgesInto(id string) []EdgeSpline {
	return r.edges[id]
}

// NodeCount returns the number of parsed node statements.
func (r *Result) NodeCount() int { return len(r.nodes) }

// EdgeCount returns the number of parsed edge statements.
func (r *Result) EdgeCount() int {
	total := 0
	for _, list := range r.edges {
		total += len(list)
	}
	return total
}

// Parse reads an entire plain-format document. dpi converts the engine's
// inch-based coordinates into device units. Parsing is all-or-nothing: the
// first malformed statement fails the whole document.
func Parse(text string, dpi float64) (*Result, error) {
	if err := errors.ValidateDPI(dpi); err != nil {
		return nil, err
	}

	r := &Result{
		GraphWidth:  1,
		GraphHeight: 1,
		nodes:       make(map[string]NodeLayout),
		edges:       make(map[string][]EdgeSpline),
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.HasPrefix(line, "graph"):
			if err := r.parseGraphLine(line); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, "node"):
			node, err := parseNodeLine(line, dpi)
			if err != nil {
				return nil, err
			}
			r.nodes[node.ID] = node
		case strings.HasPrefix(line, "edge"):
			edge, err := parseEdgeLine(line, dpi)
			if err != nil {
				return nil, err
			}
			r.edges[edge.Head] = append(r.edges[edge.Head], edge)
		}
	}

	return r, nil
}

func (r *Result) parseGraphLine(line string) error {
	tokens := strings.Split(line, " ")
	if len(tokens) != graphTokenCount {
		return errors.New(errors.ErrCodeParseTokens,
			"graph statement has %d tokens, want %d: %q", len(tokens), graphTokenCount, line)
	}

	width, err := parseFloat(tokens[2], line)
	if err != nil {
		return err
	}
	height, err := parseFloat(tokens[3], line)
	if err != nil {
		return err
	}

	r.GraphWidth = width
	r.GraphHeight = height
	return nil
}

func parseNodeLine(line string, dpi float64) (NodeLayout, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) != nodeTokenCount {
		return NodeLayout{}, errors.New(errors.ErrCodeParseTokens,
			"node statement has %d tokens, want %d: %q", len(tokens), nodeTokenCount, line)
	}

	centerX, err := parseFloat(tokens[2], line)
	if err != nil {
		return NodeLayout{}, err
	}
	centerY, err := parseFloat(tokens[3], line)
	if err != nil {
		return NodeLayout{}, err
	}
	width, err := parseFloat(tokens[4], line)
	if err != nil {
		return NodeLayout{}, err
	}
	height, err := parseFloat(tokens[5], line)
	if err != nil {
		return NodeLayout{}, err
	}

	return NodeLayout{
		ID:     tokens[1],
		X:      (centerX - width/2) * dpi,
		Y:      (centerY - height/2) * dpi,
		Width:  width * dpi,
		Height: height * dpi,
	}, nil
}

func parseEdgeLine(line string, dpi float64) (EdgeSpline, error) {
	tokens := strings.Split(line, " ")
	if len(tokens) < edgeMinTokens {
		return EdgeSpline{}, errors.New(errors.ErrCodeParseTokens,
			"edge statement has %d tokens, want at least %d: %q", len(tokens), edgeMinTokens, line)
	}

	n, err := strconv.Atoi(tokens[3])
	if err != nil {
		return EdgeSpline{}, errors.Wrap(errors.ErrCodeParseNumber, err,
			"edge statement has invalid point count %q: %q", tokens[3], line)
	}
	if want := 4 + 2*n + 2; len(tokens) != want {
		return EdgeSpline{}, errors.New(errors.ErrCodeParseTokens,
			"edge statement has %d tokens, want %d for %d points: %q", len(tokens), want, n, line)
	}
	if n < 1 {
		return EdgeSpline{}, errors.New(errors.ErrCodeParseTokens,
			"edge statement must carry at least one control point: %q", line)
	}

	points := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		x, err := parseFloat(tokens[4+2*i], line)
		if err != nil {
			return EdgeSpline{}, err
		}
		y, err := parseFloat(tokens[4+2*i+1], line)
		if err != nil {
			return EdgeSpline{}, err
		}
		points[i] = geom.Point{X: x * dpi, Y: y * dpi}
	}

	curve, err := spline.New(points)
	if err != nil {
		return EdgeSpline{}, err
	}

	return EdgeSpline{
		Tail:   tokens[1],
		Head:   tokens[2],
		Points: points,
		Curve:  curve,
	}, nil
}

func parseFloat(token, line string) (float64, error) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeParseNumber, err,
			"invalid numeric token %q: %q", token, line)
	}
	return f, nil
}
