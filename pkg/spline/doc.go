// Package spline evaluates the clamped cubic B-splines that the layout
// engine emits as edge routing hints, and converts them into renderable
// polylines.
//
// # Overview
//
// The engine's plain output describes each edge as an ordered list of control
// points. Those points define a clamped cubic B-spline: the curve starts
// exactly at the first control point and ends exactly at the last one, which
// is what lets the arrowhead land on the destination vertex boundary.
//
// # Usage
//
// Build a spline from control points, then evaluate or sample it:
//
//	s, err := spline.New(points)
//	p, err := s.Evaluate(0.5)
//	line, err := s.Polyline(dpi, spline.PolylineOptions{})
//
// [BSpline.Evaluate] accepts parameters in the closed interval [0, 1].
// [BSpline.Polyline] adaptively samples the curve and appends the three
// arrowhead points (wing, tip, wing), with the tip equal to the curve's end
// point.
//
// # Numerical conventions
//
// The basis functions follow the half-open Cox-de Boor convention
// (knot[i] <= t < knot[i+1]), so t = 1 is handled as a special case that
// returns the last control point directly. Degenerate knot spans produce
// zero-valued coefficients instead of propagating NaN or Inf.
package spline
