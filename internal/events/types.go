package events

import "time"

// Kind is the type of a completed finance transaction.
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindSale     Kind = "sale"
	KindLoan     Kind = "loan"
)

// DefaultTopic is the Pub/Sub topic transactions are published to.
const DefaultTopic = "franchise-transactions"

// Transaction is the event published after a finance transaction completes.
// Amounts are decimal strings so no precision is lost on the wire.
type Transaction struct {
	ID          string    `msgpack:"id"`
	Kind        Kind      `msgpack:"kind"`
	AthleteID   int       `msgpack:"athlete_id,omitempty"`
	AthleteName string    `msgpack:"athlete_name,omitempty"`
	Amount      string    `msgpack:"amount"`
	MoneyLeft   string    `msgpack:"money_left"`
	MoneySpent  string    `msgpack:"money_spent"`
	Debt        string    `msgpack:"debt"`
	OccurredAt  time.Time `msgpack:"occurred_at"`
}
