package spline

import (
	"math"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
)

// maxDegree is the nominal curve degree (cubic). Splines with fewer control
// points than degree+1 use the control count minus one as their effective
// degree, so short point lists still interpolate both endpoints.
const maxDegree = 3

// BSpline is a clamped cubic B-spline defined by an ordered list of control
// points. Instances are immutable and safe for concurrent evaluation.
type BSpline struct {
	knots    []float64
	controlX []float64
	controlY []float64
	n        int // control point count - 1
	p        int // effective degree, min(maxDegree, n)
}

// New builds a spline from the given control points.
// At least one control point is required.
func New(points []geom.Point) (*BSpline, error) {
	if len(points) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "spline requires at least one control point")
	}

	n := len(points) - 1
	p := maxDegree
	if n < p {
		p = n
	}
	m := p + n + 1

	// Clamped knot vector: p+1 zeros, uniformly spaced interior knots,
	// p+1 ones.
	knots := make([]float64, m+1)
	interior := float64(m - 2*p - 1)
	for i := p + 1; i < m-p; i++ {
		knots[i] = float64(i-p) / (interior + 1)
	}
	for i := m - p; i < len(knots); i++ {
		knots[i] = 1
	}

	s := &BSpline{
		knots:    knots,
		controlX: make([]float64, len(points)),
		controlY: make([]float64, len(points)),
		n:        n,
		p:        p,
	}
	for i, pt := range points {
		s.controlX[i] = pt.X
		s.controlY[i] = pt.Y
	}
	return s, nil
}

// Start returns the curve's start point, which equals the first control point.
func (s *BSpline) Start() geom.Point {
	return geom.Point{X: s.controlX[0], Y: s.controlY[0]}
}

// End returns the curve's end point, which equals the last control point.
func (s *BSpline) End() geom.Point {
	return geom.Point{X: s.controlX[s.n], Y: s.controlY[s.n]}
}

// Evaluate returns the point on the spline at parameter t.
// t must be in the closed interval [0, 1].
func (s *BSpline) Evaluate(t float64) (geom.Point, error) {
	if err := errors.ValidateSplineParam(t); err != nil {
		return geom.Point{}, err
	}
	return s.at(t), nil
}

// at evaluates the curve for a parameter already known to be in [0, 1].
func (s *BSpline) at(t float64) geom.Point {
	if t == 1 {
		// The half-open basis convention excludes the right endpoint, so the
		// recursion does not weight the final control point at t == 1.
		return s.End()
	}

	var x, y float64
	for i := 0; i <= s.n; i++ {
		basis := s.basis(i, s.p, t)
		x += s.controlX[i] * basis
		y += s.controlY[i] * basis
	}
	return geom.Point{X: x, Y: y}
}

// basis computes the Cox-de Boor basis function N(i,j) at t. Coefficient
// ratios over zero-width knot spans come out non-finite and are treated as
// zero, the standard convention for degenerate spans.
func (s *BSpline) basis(i, j int, t float64) float64 {
	if j == 0 {
		if s.knots[i] <= t && t < s.knots[i+1] {
			return 1
		}
		return 0
	}

	left := (t - s.knots[i]) / (s.knots[i+j] - s.knots[i])
	if !isFinite(left) {
		left = 0
	}
	right := (s.knots[i+j+1] - t) / (s.knots[i+j+1] - s.knots[i+1])
	if !isFinite(right) {
		right = 0
	}
	return left*s.basis(i, j-1, t) + right*s.basis(i+1, j-1, t)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
