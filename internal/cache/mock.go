package cache

import (
	"context"
	"sync"
)

// Mock is an in-memory Cache for testing. It is safe for concurrent use.
type Mock struct {
	mu      sync.Mutex
	entries map[string][]byte

	GetCalls        []string
	SetCalls        []string
	InvalidateCalls [][]string
}

func NewMock() *Mock {
	return &Mock{entries: map[string][]byte{}}
}

func (m *Mock) Get(ctx context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls = append(m.GetCalls, key)
	v, ok := m.entries[key]
	return v, ok
}

func (m *Mock) Set(ctx context.Context, key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetCalls = append(m.SetCalls, key)
	m.entries[key] = value
}

func (m *Mock) Invalidate(ctx context.Context, keys ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.InvalidateCalls = append(m.InvalidateCalls, keys)
	for _, k := range keys {
		delete(m.entries, k)
	}
}

// Has reports whether key is currently cached.
func (m *Mock) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}
