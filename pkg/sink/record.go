package sink

import (
	"sync"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
	"github.com/sdankbar/jaqumal-graph/pkg/variant"
)

// Record is a single keyed value set, used for whole-graph state such as
// the layout bounding box.
type Record struct {
	mu   sync.RWMutex
	data map[string]variant.Value
}

// NewRecord creates an empty record.
func NewRecord() *Record {
	return &Record{data: make(map[string]variant.Value)}
}

// Put stores a value under the given key, replacing any previous value.
func (r *Record) Put(key string, value variant.Value) error {
	if err := errors.ValidateAttributeKey(key); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[key] = value
	return nil
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (variant.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.data[key]
	return v, ok
}

// Len returns the number of stored keys.
func (r *Record) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

// Clear removes all keys.
func (r *Record) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make(map[string]variant.Value)
}

// Snapshot returns a copy of the record's values.
func (r *Record) Snapshot() map[string]variant.Value {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]variant.Value, len(r.data))
	for k, v := range r.data {
		out[k] = v
	}
	return out
}
