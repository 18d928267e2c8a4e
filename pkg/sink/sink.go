package sink

import (
	"sync"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// Row is one entry in a Table. Values are addressed by role name.
// Rows are created through Table.Append and stay valid as handles after
// the table reorders or removes other rows.
type Row struct {
	mu   sync.RWMutex
	data map[string]variant.Value
}

// Put stores a value under the given key, replacing any previous value.
func (r *Row) Put(key string, value variant.Value) error {
	if err := errors.ValidateAttributeKey(key); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

// Get returns the value stored under key.
func (r *Row) Get(key string) (variant.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok
}

// Delete removes the value stored under key and reports whether it was
// present.
func (r *Row) Delete(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.data[key]
	delete(r.data, key)
	return ok
}

// Keys returns the row's role names in unspecified order.
func (r *Row) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.data))
	for k := range r.data {
		keys = append(keys, k)
	}
	return keys
}

// Snapshot returns a copy of the row's values.
func (r *Row) Snapshot() map[string]variant.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]variant.Value, len(r.data))
	for k, v := range r.data {
		out[k] = v
	}
	return out
}

// Table is an ordered row store. Appends keep insertion order, which is
// the order readers observe.
type Table struct {
	mu   sync.RWMutex
	rows []*Row
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{}
}

// Append adds a row holding a copy of the given values and returns its
// handle.
func (t *Table) Append(values map[string]variant.Value) *Row {
	data := make(map[string]variant.Value, len(values))
	for k, v := range values {
		data[k] = v
	}
	row := &Row{data: data}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
	return row
}

// Len returns the number of rows.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// RowAt returns the row at the given position.
func (t *Table) RowAt(index int) (*Row, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	return t.rows[index], true
}

// Find returns the first row whose value under key equals want, or nil.
func (t *Table) Find(key string, want variant.Value) *Row {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, row := range t.rows {
		if got, ok := row.Get(key); ok && got.Equal(want) {
			return row
		}
	}
	return nil
}

// Remove deletes every row matching pred and returns how many were
// removed. Removed rows stay usable as detached handles.
func (t *Table) Remove(pred func(*Row) bool) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := t.rows[:0]
	removed := 0
	for _, row := range t.rows {
		if pred(row) {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	for i := len(kept); i < len(t.rows); i++ {
		t.rows[i] = nil
	}
	t.rows = kept
	return removed
}

// Clear removes all rows.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = nil
}

// Snapshot returns a copy of every row's values, in table order.
func (t *Table) Snapshot() []map[string]variant.Value {
	t.mu.RLock()
	rows := make([]*Row, len(t.rows))
	copy(rows, t.rows)
	t.mu.RUnlock()

	out := make([]map[string]variant.Value, len(rows))
	for i, row := range rows {
		out[i] = row.Snapshot()
	}
	return out
}
