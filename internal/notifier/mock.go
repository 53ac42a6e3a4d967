package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/fighter-franchise/internal/events"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	NotifyTransactionFunc func(tx events.Transaction) error

	NotifyTransactionCalls []events.Transaction
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifyTransactionCalls = nil
}

func (m *Mock) NotifyTransaction(ctx context.Context, tx events.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifyTransactionCalls = append(m.NotifyTransactionCalls, tx)
	if m.NotifyTransactionFunc != nil {
		return m.NotifyTransactionFunc(tx)
	}
	return nil
}

// Calls returns a copy of the recorded notifications.
func (m *Mock) Calls() []events.Transaction {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.Transaction, len(m.NotifyTransactionCalls))
	copy(out, m.NotifyTransactionCalls)
	return out
}
