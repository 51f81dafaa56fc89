package catalog

import (
	"context"
	"fmt"
	"strings"

	"orderflow/internal/apperr"
)

// Memory is an in-process Store keyed by lowercased restaurant name.
// Entries are immutable after construction, so lookups need no locking.
type Memory struct {
	byName map[string]*Restaurant
}

// NewMemory builds a Memory store holding the given restaurants.
func NewMemory(restaurants ...Restaurant) *Memory {
	m := &Memory{byName: make(map[string]*Restaurant, len(restaurants))}
	for i := range restaurants {
		r := restaurants[i]
		m.byName[strings.ToLower(r.Name)] = &r
	}
	return m
}

// Find implements Store.
func (m *Memory) Find(_ context.Context, name string) (*Restaurant, error) {
	r, ok := m.byName[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("catalog: %q: %w", name, apperr.ErrNotFound)
	}
	return r, nil
}
