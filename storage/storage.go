// Package storage provides durable key-value stores for the nutrition state.
//
// Every implementation reports a missing key with an error wrapping
// fs.ErrNotExist.
package storage

import (
	"fmt"
	"io/fs"
	"maps"
	"slices"
)

// Memory keeps values in memory. Its zero value is ready to use.
type Memory struct {
	items map[string][]byte
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory { return &Memory{items: make(map[string][]byte)} }

// GetItem returns a copy of the value stored under key.
func (m *Memory) GetItem(key string) ([]byte, error) {
	v, ok := m.items[key]
	if !ok {
		return nil, fmt.Errorf("key %q: %w", key, fs.ErrNotExist)
	}
	return slices.Clone(v), nil
}

// SetItem stores a copy of value under key.
func (m *Memory) SetItem(key string, value []byte) error {
	if m.items == nil {
		m.items = make(map[string][]byte)
	}
	m.items[key] = slices.Clone(value)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *Memory) Keys() []string { return slices.Sorted(maps.Keys(m.items)) }
