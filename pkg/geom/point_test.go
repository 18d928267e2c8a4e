package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestPointArithmetic(t *testing.T) {
	p := Point{3, 4}
	q := Point{1, -2}

	if got := p.Add(q); got != (Point{4, 2}) {
		t.Errorf("Add = %v, want {4 2}", got)
	}
	if got := p.Sub(q); got != (Point{2, 6}) {
		t.Errorf("Sub = %v, want {2 6}", got)
	}
	if got := p.Scale(2); got != (Point{6, 8}) {
		t.Errorf("Scale = %v, want {6 8}", got)
	}
	if got := p.Length(); got != 5 {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		want Point
	}{
		{name: "axis aligned", p: Point{10, 0}, want: Point{1, 0}},
		{name: "diagonal", p: Point{3, 4}, want: Point{0.6, 0.8}},
		{name: "zero vector", p: Point{0, 0}, want: Point{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Normalize()
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{name: "quarter turn", p: Point{1, 0}, angle: math.Pi / 2, want: Point{0, 1}},
		{name: "half turn", p: Point{1, 0}, angle: math.Pi, want: Point{-1, 0}},
		{name: "thirty degrees", p: Point{1, 0}, angle: math.Pi / 6, want: Point{math.Sqrt(3) / 2, 0.5}},
		{name: "negative thirty", p: Point{1, 0}, angle: -math.Pi / 6, want: Point{math.Sqrt(3) / 2, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !almostEqual(got.X, tt.want.X) || !almostEqual(got.Y, tt.want.Y) {
				t.Errorf("Rotate(%v) = %v, want %v", tt.angle, got, tt.want)
			}
		})
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{name: "above horizontal chord", p: Point{5, 3}, a: Point{0, 0}, b: Point{10, 0}, want: 3},
		{name: "on the line", p: Point{5, 0}, a: Point{0, 0}, b: Point{10, 0}, want: 0},
		{name: "degenerate chord", p: Point{3, 4}, a: Point{0, 0}, b: Point{0, 0}, want: 5},
		{name: "diagonal chord", p: Point{0, 2}, a: Point{0, 0}, b: Point{2, 2}, want: math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.DistanceToLine(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("DistanceToLine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 4, Height: 6}
	if got := r.Center(); got != (Point{3, 5}) {
		t.Errorf("Center() = %v, want {3 5}", got)
	}
}
