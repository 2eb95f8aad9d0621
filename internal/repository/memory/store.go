// Package memory contains in-memory implementations of the repository
// interfaces. They back tests and the CLI's non-persistent mode; each
// instance is constructed fresh and passed by handle, never held as
// package state.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/okorolenko/chirp/internal/repository"
)

// Map is an ordered in-memory Store. The mutex is plumbing so tests
// can share an instance; the core itself runs calls one at a time.
type Map[K cmp.Ordered, V any] struct {
	mu   sync.Mutex
	data map[K]V
}

// NewMap constructs an empty store.
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{data: make(map[K]V)}
}

// Get returns the record for key, reporting whether it exists.
func (m *Map[K, V]) Get(_ context.Context, key K) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Put inserts the record, fully replacing any prior value.
func (m *Map[K, V]) Put(_ context.Context, key K, value V) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

// Delete removes and returns the prior record if present.
func (m *Map[K, V]) Delete(_ context.Context, key K) (V, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if ok {
		delete(m.data, key)
	}
	return v, ok, nil
}

// All returns every entry in ascending key order.
func (m *Map[K, V]) All(_ context.Context) ([]repository.Entry[K, V], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]K, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	entries := make([]repository.Entry[K, V], 0, len(keys))
	for _, k := range keys {
		entries = append(entries, repository.Entry[K, V]{Key: k, Value: m.data[k]})
	}
	return entries, nil
}
