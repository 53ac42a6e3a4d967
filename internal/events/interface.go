package events

import "context"

type Publisher interface {
	Publish(ctx context.Context, tx Transaction) error
}
