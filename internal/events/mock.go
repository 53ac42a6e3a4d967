package events

import (
	"context"
	"sync"
)

// Mock is a mock implementation of Publisher for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	PublishFunc func(tx Transaction) error

	PublishCalls []Transaction
}

func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = nil
}

func (m *Mock) Publish(ctx context.Context, tx Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PublishCalls = append(m.PublishCalls, tx)
	if m.PublishFunc != nil {
		return m.PublishFunc(tx)
	}
	return nil
}

// Published returns a copy of the recorded transactions.
func (m *Mock) Published() []Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Transaction, len(m.PublishCalls))
	copy(out, m.PublishCalls)
	return out
}
