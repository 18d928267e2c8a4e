package spline

import (
	"math"
	"sort"
	"testing"

	"github.com/sdankbar/jaqumal-graph/pkg/geom"
)

func TestPolylineStraightEdge(t *testing.T) {
	// A short straight edge needs no refinement beyond the mandatory
	// midpoint: three curve samples plus three arrowhead points.
	s := mustSpline(t, []geom.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 0, Y: 4}, {X: 0, Y: 6}})

	line, err := s.Polyline(96, PolylineOptions{})
	if err != nil {
		t.Fatalf("Polyline() error = %v", err)
	}

	if len(line) != 6 {
		t.Fatalf("len(line) = %d, want 6", len(line))
	}
	if line[0] != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("line[0] = %v, want curve start", line[0])
	}
	if line[2] != (geom.Point{X: 0, Y: 6}) {
		t.Errorf("line[2] = %v, want curve end", line[2])
	}
	// The arrow tip repeats the curve's end point.
	if line[4] != (geom.Point{X: 0, Y: 6}) {
		t.Errorf("line[4] = %v, want arrow tip at curve end", line[4])
	}
}

func TestPolylineArrowheadGeometry(t *testing.T) {
	// Control points chosen so the final samples approach the end point
	// horizontally: secondToLast = (0,0)-ish direction onto last = (10,0).
	s := mustSpline(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})

	const dpi = 96.0
	line, err := s.Polyline(dpi, PolylineOptions{})
	if err != nil {
		t.Fatalf("Polyline() error = %v", err)
	}

	arrowLength := DefaultArrowLengthInches * dpi
	tip := line[len(line)-2]
	wing1 := line[len(line)-3]
	wing2 := line[len(line)-1]

	if tip != (geom.Point{X: 10, Y: 0}) {
		t.Fatalf("tip = %v, want (10, 0)", tip)
	}

	for i, wing := range []geom.Point{wing1, wing2} {
		if d := wing.DistanceTo(tip); math.Abs(d-arrowLength) > 1e-9 {
			t.Errorf("wing %d distance = %v, want %v", i, d, arrowLength)
		}
	}

	// Wings sit at +-30 degrees off the reversed direction (-1, 0).
	base := geom.Point{X: -1, Y: 0}.Scale(arrowLength)
	want1 := tip.Add(base.Rotate(arrowAngle))
	want2 := tip.Add(base.Rotate(-arrowAngle))
	if wing1.DistanceTo(want1) > 1e-9 {
		t.Errorf("wing1 = %v, want %v", wing1, want1)
	}
	if wing2.DistanceTo(want2) > 1e-9 {
		t.Errorf("wing2 = %v, want %v", wing2, want2)
	}
}

func TestPolylineRefinesCurvedSpans(t *testing.T) {
	// A tall S-curve forces midpoint refinement: long chords with midpoints
	// well off the straight line.
	s := mustSpline(t, []geom.Point{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 100, Y: 100},
		{X: 0, Y: 100},
	})

	line, err := s.Polyline(96, PolylineOptions{})
	if err != nil {
		t.Fatalf("Polyline() error = %v", err)
	}

	curve := line[:len(line)-3]
	if len(curve) <= 3 {
		t.Fatalf("len(curve) = %d, want refinement beyond the midpoint", len(curve))
	}

	// Samples are sorted by parameter, so x must trace the curve from the
	// start point to the end point without jumping.
	if curve[0] != (geom.Point{X: 0, Y: 0}) {
		t.Errorf("curve[0] = %v, want start", curve[0])
	}
	if curve[len(curve)-1] != (geom.Point{X: 0, Y: 100}) {
		t.Errorf("curve end = %v, want (0, 100)", curve[len(curve)-1])
	}
	ys := make([]float64, len(curve))
	for i, p := range curve {
		ys[i] = p.Y
	}
	if !sort.Float64sAreSorted(ys) {
		t.Errorf("curve y-coordinates not monotonic: %v", ys)
	}
}

func TestPolylineRejectsBadDPI(t *testing.T) {
	s := mustSpline(t, []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	for _, bad := range []float64{0, -96, math.NaN(), math.Inf(1)} {
		if _, err := s.Polyline(bad, PolylineOptions{}); err == nil {
			t.Errorf("Polyline(dpi=%v) did not return an error", bad)
		}
	}
}

func TestPolylineOptionOverrides(t *testing.T) {
	s := mustSpline(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}})

	line, err := s.Polyline(100, PolylineOptions{ArrowLengthInches: 0.5})
	if err != nil {
		t.Fatalf("Polyline() error = %v", err)
	}

	tip := line[len(line)-2]
	wing := line[len(line)-1]
	if d := wing.DistanceTo(tip); math.Abs(d-50) > 1e-9 {
		t.Errorf("wing distance = %v, want 50", d)
	}
}
