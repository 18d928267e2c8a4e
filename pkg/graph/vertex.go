package graph

import (
	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/geom"
	"github.com/sdankbar/jaqumal-graph/pkg/sink"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// Vertex is one node in a Graph. It carries a size in inches used for the
// next layout request, a device-space placement produced by the last
// layout pass, and an attribute map published to the presentation row.
//
// A vertex removed from its graph is detached: every mutating call on it
// fails and reads report nothing.
type Vertex struct {
	id           string
	graph        *Graph
	widthInches  float64
	heightInches float64
	row          *sink.Row

	children  []*Vertex
	childSet  map[*Vertex]struct{}
	parents   []*Vertex
	parentSet map[*Vertex]struct{}
}

// ID returns the vertex's engine-safe id token.
func (v *Vertex) ID() string { return v.id }

// WidthInches returns the size requested for the next layout.
func (v *Vertex) WidthInches() float64 { return v.widthInches }

// HeightInches returns the size requested for the next layout.
func (v *Vertex) HeightInches() float64 { return v.heightInches }

// IsRoot reports whether no vertex holds this one as a child.
func (v *Vertex) IsRoot() bool { return len(v.parents) == 0 }

// IsLeaf reports whether this vertex has no children.
func (v *Vertex) IsLeaf() bool { return len(v.children) == 0 }

// Children returns the child vertices in the order they were added.
func (v *Vertex) Children() []*Vertex {
	out := make([]*Vertex, len(v.children))
	copy(out, v.children)
	return out
}

// Parents returns the parent vertices in the order they were added.
func (v *Vertex) Parents() []*Vertex {
	out := make([]*Vertex, len(v.parents))
	copy(out, v.parents)
	return out
}

// AddChild registers child under this vertex and this vertex as one of
// child's parents. Adding an existing child is a no-op. Both vertices
// must belong to the same graph.
func (v *Vertex) AddChild(child *Vertex) error {
	if err := v.checkAttached(); err != nil {
		return err
	}
	if child == nil {
		return errors.New(errors.ErrCodeInvalidInput, "child vertex is nil")
	}
	if child.graph != v.graph {
		return errors.New(errors.ErrCodeInvalidGraph,
			"vertex %s does not belong to the same graph as %s", child.id, v.id)
	}
	if _, ok := v.childSet[child]; ok {
		return nil
	}

	v.childSet[child] = struct{}{}
	v.children = append(v.children, child)
	child.parentSet[v] = struct{}{}
	child.parents = append(child.parents, v)
	return nil
}

// RemoveChild severs the edge to child in both directions. It reports
// whether child was actually a child; when it was not, neither vertex is
// modified.
func (v *Vertex) RemoveChild(child *Vertex) (bool, error) {
	if err := v.checkAttached(); err != nil {
		return false, err
	}
	if child == nil {
		return false, nil
	}
	if _, ok := v.childSet[child]; !ok {
		return false, nil
	}

	v.detachChild(child)
	child.detachParent(v)
	return true, nil
}

// Get returns the attribute stored under key. Detached vertices report
// nothing.
func (v *Vertex) Get(key string) (variant.Value, bool) {
	if v.graph == nil {
		return variant.Value{}, false
	}
	return v.row.Get(key)
}

// Put stores an attribute under key, replacing any previous value. The
// geometry column names are reserved and rejected.
func (v *Vertex) Put(key string, value variant.Value) error {
	if err := v.checkAttached(); err != nil {
		return err
	}
	if err := errors.ValidateAttributeKey(key); err != nil {
		return err
	}
	if isReservedKey(key) {
		return errors.New(errors.ErrCodeInvalidKey, "key %q is reserved for layout geometry", key)
	}
	return v.row.Put(key, value)
}

// Attributes returns a snapshot of the caller-defined attributes,
// excluding the reserved geometry columns. Detached vertices report
// nothing.
func (v *Vertex) Attributes() map[string]variant.Value {
	if v.graph == nil {
		return nil
	}
	all := v.row.Snapshot()
	out := make(map[string]variant.Value, len(all))
	for key, value := range all {
		if isReservedKey(key) {
			continue
		}
		out[key] = value
	}
	return out
}

// Remove deletes the attribute stored under key and reports whether it
// was present.
func (v *Vertex) Remove(key string) (bool, error) {
	if err := v.checkAttached(); err != nil {
		return false, err
	}
	if isReservedKey(key) {
		return false, errors.New(errors.ErrCodeInvalidKey, "key %q is reserved for layout geometry", key)
	}
	return v.row.Delete(key), nil
}

// SetSize updates the size submitted with the next layout request. The
// device-space placement is untouched until that layout completes.
func (v *Vertex) SetSize(widthInches, heightInches float64) error {
	if err := v.checkAttached(); err != nil {
		return err
	}
	if err := errors.ValidateSize(widthInches, heightInches); err != nil {
		return err
	}
	v.widthInches = widthInches
	v.heightInches = heightInches
	return nil
}

// Bounds returns the vertex's device-space placement from the last
// layout pass, or the zero rect for a detached vertex.
func (v *Vertex) Bounds() geom.Rect {
	var r geom.Rect
	if v.graph == nil {
		return r
	}
	if val, ok := v.row.Get(KeyX); ok {
		r.X, _ = val.AsReal()
	}
	if val, ok := v.row.Get(KeyY); ok {
		r.Y, _ = val.AsReal()
	}
	if val, ok := v.row.Get(KeyWidth); ok {
		r.Width, _ = val.AsReal()
	}
	if val, ok := v.row.Get(KeyHeight); ok {
		r.Height, _ = val.AsReal()
	}
	return r
}

// SetBounds overwrites the vertex's device-space placement. Layout
// passes call this when applying parsed engine output.
func (v *Vertex) SetBounds(r geom.Rect) error {
	if err := v.checkAttached(); err != nil {
		return err
	}
	_ = v.row.Put(KeyX, variant.RealVal(r.X))
	_ = v.row.Put(KeyY, variant.RealVal(r.Y))
	_ = v.row.Put(KeyWidth, variant.RealVal(r.Width))
	_ = v.row.Put(KeyHeight, variant.RealVal(r.Height))
	return nil
}

func (v *Vertex) checkAttached() error {
	if v.graph == nil {
		return errors.New(errors.ErrCodeInvalidGraph, "vertex %s is no longer attached to a graph", v.id)
	}
	return nil
}

func (v *Vertex) detachChild(child *Vertex) {
	delete(v.childSet, child)
	v.children = removeFromList(v.children, child)
}

func (v *Vertex) detachParent(parent *Vertex) {
	delete(v.parentSet, parent)
	v.parents = removeFromList(v.parents, parent)
}

// invalidate detaches the vertex after removal from its graph.
func (v *Vertex) invalidate() {
	v.graph = nil
	v.children = nil
	v.childSet = nil
	v.parents = nil
	v.parentSet = nil
}

func removeFromList(list []*Vertex, target *Vertex) []*Vertex {
	for i, v := range list {
		if v == target {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}
