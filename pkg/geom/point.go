// Package geom provides the 2-D primitives shared by the layout pipeline.
// All coordinates are in device units (length units scaled by dots-per-inch)
// with the origin at the top-left and y growing downward.
package geom

import "math"

// Point is a 2-D point or vector in device units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by f.
func (p Point) Scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// Length returns the Euclidean norm of p treated as a vector.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// LengthSquared returns the squared Euclidean norm of p.
func (p Point) LengthSquared() float64 { return p.X*p.X + p.Y*p.Y }

// Normalize returns the unit vector in the direction of p.
// The zero vector is returned unchanged.
func (p Point) Normalize() Point {
	l := p.Length()
	if l == 0 {
		return p
	}
	return Point{p.X / l, p.Y / l}
}

// Rotate returns p rotated by the given angle in radians.
// Positive angles rotate toward positive y.
func (p Point) Rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// DistanceTo returns the Euclidean distance between p and q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// DistanceToLine returns the perpendicular distance from p to the infinite
// line through a and b. If a and b coincide it falls back to the distance
// from p to a.
func (p Point) DistanceToLine(a, b Point) float64 {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return p.DistanceTo(a)
	}
	return math.Abs(d.Y*p.X-d.X*p.Y+b.X*a.Y-b.Y*a.X) / l
}

// Rect is an axis-aligned rectangle in device units, addressed by its
// top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point { return Point{r.X + r.Width/2, r.Y + r.Height/2} }
