// Package variant implements the tagged attribute value type stored on graph
// vertices and published to the presentation row stores.
//
// A Value carries exactly one of a closed set of kinds: bool, int, real,
// string, 2-D point, or list of 2-D points. Callers map their own attribute
// role types to stable string keys; the value side of that map is always a
// Value so the presentation layer can decode columns without reflection.
package variant

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// The closed set of value kinds.
const (
	KindBool Kind = iota
	KindInt
	KindReal
	KindString
	KindPoint
	KindPointList
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindReal:
		return "real"
	case KindString:
		return "string"
	case KindPoint:
		return "point"
	case KindPointList:
		return "pointlist"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is an immutable tagged value. The zero Value is a false bool.
type Value struct {
	kind   Kind
	b      bool
	i      int64
	r      float64
	s      string
	p      geom.Point
	points []geom.Point
}

// BoolVal returns a Value holding b.
func BoolVal(b bool) Value { return Value{kind: KindBool, b: b} }

// IntVal returns a Value holding i.
func IntVal(i int64) Value { return Value{kind: KindInt, i: i} }

// RealVal returns a Value holding r.
func RealVal(r float64) Value { return Value{kind: KindReal, r: r} }

// StringVal returns a Value holding s.
func StringVal(s string) Value { return Value{kind: KindString, s: s} }

// PointVal returns a Value holding p.
func PointVal(p geom.Point) Value { return Value{kind: KindPoint, p: p} }

// PointListVal returns a Value holding a copy of points.
func PointListVal(points []geom.Point) Value {
	cp := make([]geom.Point, len(points))
	copy(cp, points)
	return Value{kind: KindPointList, points: cp}
}

// Kind returns the kind of value held.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns the held bool. The second result is false if the Value
// holds a different kind.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the held int.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsReal returns the held real.
func (v Value) AsReal() (float64, bool) { return v.r, v.kind == KindReal }

// AsString returns the held string.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsPoint returns the held point.
func (v Value) AsPoint() (geom.Point, bool) { return v.p, v.kind == KindPoint }

// AsPointList returns the held point list. The slice must not be mutated.
func (v Value) AsPointList() ([]geom.Point, bool) {
	return v.points, v.kind == KindPointList
}

// Interface returns the held value as an untyped any, for display layers
// that already switch on dynamic types.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindReal:
		return v.r
	case KindString:
		return v.s
	case KindPoint:
		return v.p
	case KindPointList:
		return v.points
	default:
		return nil
	}
}

// String renders the value for logs and terminal display.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindReal:
		return fmt.Sprintf("%g", v.r)
	case KindString:
		return v.s
	case KindPoint:
		return fmt.Sprintf("(%g, %g)", v.p.X, v.p.Y)
	case KindPointList:
		parts := make([]string, len(v.points))
		for i, p := range v.points {
			parts[i] = fmt.Sprintf("(%g, %g)", p.X, p.Y)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return ""
	}
}

// Equal reports whether two Values hold the same kind and contents.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindReal:
		return v.r == o.r
	case KindString:
		return v.s == o.s
	case KindPoint:
		return v.p == o.p
	case KindPointList:
		if len(v.points) != len(o.points) {
			return false
		}
		for i := range v.points {
			if v.points[i] != o.points[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Encoded is the wire form of a Value, usable with both JSON and BSON.
type Encoded struct {
	Kind   string       `json:"kind" bson:"kind"`
	Bool   bool         `json:"bool,omitempty" bson:"bool,omitempty"`
	Int    int64        `json:"int,omitempty" bson:"int,omitempty"`
	Real   float64      `json:"real,omitempty" bson:"real,omitempty"`
	Str    string       `json:"string,omitempty" bson:"string,omitempty"`
	Point  *geom.Point  `json:"point,omitempty" bson:"point,omitempty"`
	Points []geom.Point `json:"points,omitempty" bson:"points,omitempty"`
}

// Encode converts the Value to its wire form.
func (v Value) Encode() Encoded {
	e := Encoded{Kind: v.kind.String()}
	switch v.kind {
	case KindBool:
		e.Bool = v.b
	case KindInt:
		e.Int = v.i
	case KindReal:
		e.Real = v.r
	case KindString:
		e.Str = v.s
	case KindPoint:
		p := v.p
		e.Point = &p
	case KindPointList:
		e.Points = v.points
	}
	return e
}

// Decode converts a wire form back into a Value.
func Decode(e Encoded) (Value, error) {
	switch e.Kind {
	case "bool":
		return BoolVal(e.Bool), nil
	case "int":
		return IntVal(e.Int), nil
	case "real":
		return RealVal(e.Real), nil
	case "string":
		return StringVal(e.Str), nil
	case "point":
		if e.Point == nil {
			return Value{}, errors.New(errors.ErrCodeInvalidValue, "point value missing point field")
		}
		return PointVal(*e.Point), nil
	case "pointlist":
		return PointListVal(e.Points), nil
	default:
		return Value{}, errors.New(errors.ErrCodeInvalidValue, "unknown value kind %q", e.Kind)
	}
}

// MarshalJSON implements json.Marshaler using the wire form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Encode())
}

// UnmarshalJSON implements json.Unmarshaler using the wire form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var e Encoded
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	decoded, err := Decode(e)
	if err != nil {
		return err
	}
	*v = decoded
	return nil
}
