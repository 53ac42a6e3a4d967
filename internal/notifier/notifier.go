package notifier

import (
	"context"

	"github.com/mauv0809/fighter-franchise/internal/events"
)

// Notifier tells people about completed finance transactions.
// This decouples the coordinator from the notification provider (e.g., Slack).
type Notifier interface {
	NotifyTransaction(ctx context.Context, tx events.Transaction) error
}

// Nop drops every notification.
type Nop struct{}

func (Nop) NotifyTransaction(ctx context.Context, tx events.Transaction) error { return nil }
