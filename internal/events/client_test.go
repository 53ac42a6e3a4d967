package events

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func sampleTransaction() Transaction {
	return Transaction{
		ID:          "tx-1",
		Kind:        KindPurchase,
		AthleteID:   7,
		AthleteName: "Apollo",
		Amount:      "500",
		MoneyLeft:   "500",
		MoneySpent:  "500",
		Debt:        "0",
		OccurredAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestEncodeDecode(t *testing.T) {
	tx := sampleTransaction()

	data, err := Encode(tx)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	assert.True(t, tx.OccurredAt.Equal(got.OccurredAt))
	got.OccurredAt = tx.OccurredAt
	assert.Equal(t, tx, got)
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode([]byte{0xc1})
	assert.Error(t, err)
}

func TestClientPublish(t *testing.T) {
	ctx := context.Background()
	srv := pstest.NewServer()
	defer srv.Close()

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	admin, err := pubsub.NewClient(ctx, "test-project", option.WithGRPCConn(conn))
	require.NoError(t, err)
	_, err = admin.CreateTopic(ctx, DefaultTopic)
	require.NoError(t, err)

	client, err := New(ctx, "test-project", "", option.WithGRPCConn(conn))
	require.NoError(t, err)

	require.NoError(t, client.Publish(ctx, sampleTransaction()))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "purchase", msgs[0].Attributes["kind"])
	got, err := Decode(msgs[0].Data)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", got.AthleteName)
}

func TestMock(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.Publish(context.Background(), sampleTransaction()))
	assert.Len(t, m.Published(), 1)
	m.Reset()
	assert.Empty(t, m.Published())
}
