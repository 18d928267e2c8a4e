package store

import (
	"context"
	"sort"
	"sync"

	"github.com/sdankbar/jaqumal-graph/pkg/errors"
)

// Memory is an in-process Store for development and tests.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]*Layout
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{docs: make(map[string]*Layout)}
}

func (m *Memory) Save(ctx context.Context, doc *Layout) error {
	if doc == nil {
		return errors.New(errors.ErrCodeInvalidInput, "layout document is nil")
	}
	if err := errors.ValidateLayoutName(doc.Name); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *doc
	m.docs[doc.Name] = &copied
	return nil
}

func (m *Memory) Load(ctx context.Context, name string) (*Layout, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, ok := m.docs[name]
	if !ok {
		return nil, errors.New(errors.ErrCodeNotFound, "layout %q not found", name)
	}
	copied := *doc
	return &copied, nil
}

func (m *Memory) List(ctx context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.docs))
	for name := range m.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Memory) Delete(ctx context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[name]; !ok {
		return errors.New(errors.ErrCodeNotFound, "layout %q not found", name)
	}
	delete(m.docs, name)
	return nil
}

func (m *Memory) Close(ctx context.Context) error { return nil }
