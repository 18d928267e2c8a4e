// Package render produces preview artifacts from encoded DOT documents.
//
// Previews are a debugging surface: they rasterize the same DOT text the
// layout pipeline sends to the external engine, so the picture matches
// what the engine was asked to place.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
)

// Supported preview formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// Preview renders the DOT document into the requested format. FormatDOT
// passes the document through unchanged.
func Preview(ctx context.Context, dot string, format string) ([]byte, error) {
	var target graphviz.Format
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		target = graphviz.SVG
	case FormatPNG:
		target = graphviz.PNG
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat,
			"format %q is not one of svg, png, dot", format)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, target, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// ContentType returns the MIME type for a preview format.
func ContentType(format string) string {
	switch format {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatDOT:
		return "text/vnd.graphviz"
	default:
		return "application/octet-stream"
	}
}
