package events

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
)

// Client publishes transactions to a Pub/Sub topic.
type Client struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

var _ Publisher = (*Client)(nil)

// New connects to Pub/Sub. opts are passed through to the Pub/Sub client,
// e.g. to point it at an emulator.
func New(ctx context.Context, projectID, topic string, opts ...option.ClientOption) (*Client, error) {
	c, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create pubsub client: %w", err)
	}
	if topic == "" {
		topic = DefaultTopic
	}
	return &Client{client: c, topic: c.Topic(topic)}, nil
}

func (c *Client) Publish(ctx context.Context, tx Transaction) error {
	data, err := Encode(tx)
	if err != nil {
		return err
	}
	res := c.topic.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: map[string]string{"kind": string(tx.Kind)},
	})
	serverID, err := res.Get(ctx)
	if err != nil {
		log.Error("Failed to publish transaction", "error", err, "topic", c.topic.ID())
		return fmt.Errorf("failed to publish transaction: %w", err)
	}
	log.Debug("Transaction published", "serverID", serverID, "kind", tx.Kind)
	return nil
}

// Close flushes pending messages and closes the connection.
func (c *Client) Close() error {
	c.topic.Stop()
	return c.client.Close()
}

// Encode serializes tx with MessagePack.
func Encode(tx Transaction) ([]byte, error) {
	data, err := msgpack.Marshal(tx)
	if err != nil {
		return nil, fmt.Errorf("msgpack marshal: %w", err)
	}
	return data, nil
}

// Decode reads a transaction published by Client.
func Decode(data []byte) (Transaction, error) {
	var tx Transaction
	if err := msgpack.Unmarshal(data, &tx); err != nil {
		return Transaction{}, fmt.Errorf("msgpack unmarshal: %w", err)
	}
	return tx, nil
}

// Nop discards every transaction. It is used when no project is configured.
type Nop struct{}

func (Nop) Publish(ctx context.Context, tx Transaction) error { return nil }
