package sink

import (
	"testing"

	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

func TestTableAppendAndRead(t *testing.T) {
	table := NewTable()

	row := table.Append(map[string]variant.Value{
		"id": variant.StringVal("C"),
		"x":  variant.RealVal(0),
	})

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}

	got, ok := table.RowAt(0)
	if !ok || got != row {
		t.Fatal("RowAt(0) did not return the appended row")
	}

	v, ok := row.Get("id")
	if !ok {
		t.Fatal("Get(id) missing")
	}
	if s, _ := v.AsString(); s != "C" {
		t.Errorf("id = %q, want C", s)
	}

	if _, ok := table.RowAt(1); ok {
		t.Error("RowAt(1) = ok for out-of-range index")
	}
	if _, ok := table.RowAt(-1); ok {
		t.Error("RowAt(-1) = ok for negative index")
	}
}

func TestTableAppendCopiesValues(t *testing.T) {
	table := NewTable()
	values := map[string]variant.Value{"id": variant.StringVal("C")}
	row := table.Append(values)

	values["id"] = variant.StringVal("mutated")

	v, _ := row.Get("id")
	if s, _ := v.AsString(); s != "C" {
		t.Errorf("row value changed with caller map, got %q", s)
	}
}

func TestRowPutReplaces(t *testing.T) {
	table := NewTable()
	row := table.Append(map[string]variant.Value{"x": variant.RealVal(0)})

	if err := row.Put("x", variant.RealVal(42)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	v, _ := row.Get("x")
	if f, _ := v.AsReal(); f != 42 {
		t.Errorf("x = %v, want 42", f)
	}
}

func TestRowDelete(t *testing.T) {
	table := NewTable()
	row := table.Append(map[string]variant.Value{"label": variant.StringVal("start")})

	if !row.Delete("label") {
		t.Error("Delete(label) = false for a present key")
	}
	if row.Delete("label") {
		t.Error("Delete(label) = true for an absent key")
	}
	if _, ok := row.Get("label"); ok {
		t.Error("Get(label) = ok after Delete")
	}
}

func TestRowPutRejectsEmptyKey(t *testing.T) {
	table := NewTable()
	row := table.Append(nil)

	if err := row.Put("", variant.BoolVal(true)); err == nil {
		t.Error("Put(\"\") did not return an error")
	}
}

func TestTableFind(t *testing.T) {
	table := NewTable()
	table.Append(map[string]variant.Value{"id": variant.StringVal("C")})
	want := table.Append(map[string]variant.Value{"id": variant.StringVal("D")})

	if got := table.Find("id", variant.StringVal("D")); got != want {
		t.Error("Find(id, D) did not return the matching row")
	}
	if got := table.Find("id", variant.StringVal("Z")); got != nil {
		t.Error("Find(id, Z) returned a row for an absent value")
	}
}

func TestTableRemove(t *testing.T) {
	table := NewTable()
	table.Append(map[string]variant.Value{"id": variant.StringVal("C")})
	keep := table.Append(map[string]variant.Value{"id": variant.StringVal("D")})

	removed := table.Remove(func(r *Row) bool {
		v, ok := r.Get("id")
		if !ok {
			return false
		}
		s, _ := v.AsString()
		return s == "C"
	})

	if removed != 1 {
		t.Fatalf("Remove() = %d, want 1", removed)
	}
	if table.Len() != 1 {
		t.Fatalf("Len() = %d after removal, want 1", table.Len())
	}
	got, _ := table.RowAt(0)
	if got != keep {
		t.Error("surviving row is not the expected one")
	}
}

func TestTableRemoveKeepsOrder(t *testing.T) {
	table := NewTable()
	for _, id := range []string{"A", "B", "C", "D"} {
		table.Append(map[string]variant.Value{"id": variant.StringVal(id)})
	}

	table.Remove(func(r *Row) bool {
		v, _ := r.Get("id")
		s, _ := v.AsString()
		return s == "B"
	})

	want := []string{"A", "C", "D"}
	for i, id := range want {
		row, ok := table.RowAt(i)
		if !ok {
			t.Fatalf("RowAt(%d) missing", i)
		}
		v, _ := row.Get("id")
		if s, _ := v.AsString(); s != id {
			t.Errorf("row %d id = %q, want %q", i, s, id)
		}
	}
}

func TestTableClearAndSnapshot(t *testing.T) {
	table := NewTable()
	table.Append(map[string]variant.Value{"id": variant.StringVal("C")})
	table.Append(map[string]variant.Value{"id": variant.StringVal("D")})

	snap := table.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("Snapshot() = %d rows, want 2", len(snap))
	}
	if s, _ := snap[0]["id"].AsString(); s != "C" {
		t.Errorf("snapshot row 0 id = %q, want C", s)
	}

	table.Clear()
	if table.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", table.Len())
	}
	if len(snap) != 2 {
		t.Error("snapshot changed after Clear")
	}
}

func TestRecord(t *testing.T) {
	rec := NewRecord()

	if err := rec.Put("width", variant.RealVal(96)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := rec.Put("", variant.RealVal(1)); err == nil {
		t.Error("Put(\"\") did not return an error")
	}

	v, ok := rec.Get("width")
	if !ok {
		t.Fatal("Get(width) missing")
	}
	if f, _ := v.AsReal(); f != 96 {
		t.Errorf("width = %v, want 96", f)
	}

	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}

	rec.Clear()
	if _, ok := rec.Get("width"); ok {
		t.Error("Get(width) = ok after Clear")
	}
}
