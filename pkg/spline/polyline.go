package spline

import (
	"math"
	"sort"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
)

// Default polyline construction parameters, in the units noted.
const (
	// DefaultArrowLengthInches is the arrowhead wing length in inches.
	DefaultArrowLengthInches = 0.125

	// DefaultFlatnessLimit is the midpoint-to-chord distance in device units
	// below which an interval is considered flat enough.
	DefaultFlatnessLimit = 0.5

	// DefaultSubdivideLengthSq is the squared half-chord length in device
	// units above which a non-flat interval is bisected further.
	DefaultSubdivideLengthSq = 100.0

	// arrowAngle is the wing angle off the reversed curve direction.
	arrowAngle = 30 * math.Pi / 180
)

// PolylineOptions tunes curve sampling and arrowhead construction.
// Zero fields take the package defaults.
type PolylineOptions struct {
	ArrowLengthInches float64
	FlatnessLimit     float64
	SubdivideLengthSq float64
}

func (o PolylineOptions) withDefaults() PolylineOptions {
	if o.ArrowLengthInches == 0 {
		o.ArrowLengthInches = DefaultArrowLengthInches
	}
	if o.FlatnessLimit == 0 {
		o.FlatnessLimit = DefaultFlatnessLimit
	}
	if o.SubdivideLengthSq == 0 {
		o.SubdivideLengthSq = DefaultSubdivideLengthSq
	}
	return o
}

// samplePoint pairs a curve point with the parameter it was sampled at so
// recursive bisection results can be sorted back into parameter order.
type samplePoint struct {
	t float64
	p geom.Point
}

// Polyline samples the spline over [0, 1] and appends arrowhead geometry.
//
// Sampling always includes the endpoints and the midpoint, then bisects any
// interval whose midpoint strays from the chord by at least the flatness
// limit while either half-chord is still longer than the subdivision
// threshold. The returned slice ends with the three arrowhead points
// [wing, tip, wing] where tip equals the curve's end point.
func (s *BSpline) Polyline(dpi float64, opts PolylineOptions) ([]geom.Point, error) {
	if err := errors.ValidateDPI(dpi); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	samples := []samplePoint{
		{t: 0, p: s.at(0)},
		{t: 1, p: s.at(1)},
	}
	samples = s.subdivide(0, 1, samples[0].p, samples[1].p, samples, opts)

	sort.Slice(samples, func(i, j int) bool { return samples[i].t < samples[j].t })

	line := make([]geom.Point, 0, len(samples)+3)
	for _, sp := range samples {
		line = append(line, sp.p)
	}

	secondToLast := samples[len(samples)-2].p
	last := samples[len(samples)-1].p

	arrowLength := opts.ArrowLengthInches * dpi
	back := secondToLast.Sub(last).Normalize().Scale(arrowLength)
	wing1 := last.Add(back.Rotate(arrowAngle))
	wing2 := last.Add(back.Rotate(-arrowAngle))

	line = append(line, wing1, last, wing2)
	return line, nil
}

// subdivide appends the midpoint of [lo, hi] and recurses into both halves
// while the interval still needs refinement.
func (s *BSpline) subdivide(lo, hi float64, loPoint, hiPoint geom.Point, samples []samplePoint, opts PolylineOptions) []samplePoint {
	mid := (lo + hi) / 2
	midPoint := s.at(mid)
	samples = append(samples, samplePoint{t: mid, p: midPoint})

	if needsRefinement(loPoint, midPoint, hiPoint, opts) {
		samples = s.subdivide(lo, mid, loPoint, midPoint, samples, opts)
		samples = s.subdivide(mid, hi, midPoint, hiPoint, samples, opts)
	}
	return samples
}

// needsRefinement reports whether the interval with endpoints a and c and
// midpoint b is still too coarse. A flat midpoint ends refinement; otherwise
// the interval splits while either half-chord exceeds the length threshold.
func needsRefinement(a, b, c geom.Point, opts PolylineOptions) bool {
	if b.DistanceToLine(a, c) < opts.FlatnessLimit {
		return false
	}
	if a.Sub(b).LengthSquared() > opts.SubdivideLengthSq {
		return true
	}
	if b.Sub(c).LengthSquared() > opts.SubdivideLengthSq {
		return true
	}
	return false
}
