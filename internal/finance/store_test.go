package finance

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/money"
	"github.com/mauv0809/fighter-franchise/internal/result"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerJSON(t *testing.T) {
	var l Ledger
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"moneyLeft":1000.5,"moneySpent":0,"debt":20}`), &l))
	assert.Equal(t, "1000.5", l.MoneyLeft.String())

	out, err := json.Marshal(l)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"moneyLeft":1000.5,"moneySpent":0,"debt":20}`, string(out))
}

func TestLedgerValidate(t *testing.T) {
	assert.Empty(t, ledgerOf(0, 0, 0).Validate())
	assert.Equal(t, "Money left cannot be negative", ledgerOf(-1, 0, 0).Validate())
	assert.Equal(t, "Debt cannot be negative", ledgerOf(0, 0, -1).Validate())
}

func TestEnsureLedger(t *testing.T) {
	t.Run("existing ledger", func(t *testing.T) {
		b := newBackend(ledgerOf(1000, 0, 0))
		client := b.client()
		store := NewStore(client, nil)

		res := store.EnsureLedger(context.Background())

		require.Equal(t, result.KindOK, res.Kind())
		l, _ := res.Data()
		assert.Equal(t, 1, l.ID)
		assert.Empty(t, client.PostCalls)
	})

	t.Run("creates an empty ledger", func(t *testing.T) {
		b := &backend{athletePutFail: map[int]bool{}}
		b.ledgers = []Ledger{}
		client := b.client()
		store := NewStore(client, nil)

		res := store.EnsureLedger(context.Background())

		require.Equal(t, result.KindOK, res.Kind(), res.Message())
		require.Len(t, client.PostCalls, 1)
		l, _ := res.Data()
		assert.NotZero(t, l.ID)
		assertLedger(t, ledgerOf(0, 0, 0), l)
	})

	t.Run("load failure", func(t *testing.T) {
		client := api.NewMockClient()
		client.GetFunc = func(resource api.Resource) api.RawResult {
			return api.RawResult{Outcome: api.OutcomeTransportError, Message: api.ErrConnecting}
		}
		store := NewStore(client, nil)

		res := store.EnsureLedger(context.Background())

		assert.Equal(t, result.KindErr, res.Kind())
		assert.Equal(t, api.ErrConnecting, store.Snapshot().ErrorMessage)
	})
}

func TestStoreUpdate_RejectsNegativeLedger(t *testing.T) {
	client := api.NewMockClient()
	store := NewStore(client, nil)

	res := store.Update(context.Background(), Ledger{ID: 1, MoneyLeft: money.New(-10)})

	assert.Equal(t, result.KindRejected, res.Kind())
	assert.Empty(t, client.PutCalls)
}
