package finance

import (
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/money"
)

// Ledger is the franchise's single finance record.
type Ledger struct {
	ID         int          `json:"id,omitempty"`
	MoneyLeft  money.Amount `json:"moneyLeft"`
	MoneySpent money.Amount `json:"moneySpent"`
	Debt       money.Amount `json:"debt"`
}

func (l Ledger) RecordID() int { return l.ID }

// ApplyPurchase returns the ledger after paying price.
func (l Ledger) ApplyPurchase(price money.Amount) Ledger {
	l.MoneyLeft = l.MoneyLeft.Sub(price)
	l.MoneySpent = l.MoneySpent.Add(price)
	return l
}

// ApplySale returns the ledger after receiving price. Spending is not reversed.
func (l Ledger) ApplySale(price money.Amount) Ledger {
	l.MoneyLeft = l.MoneyLeft.Add(price)
	return l
}

// ApplyLoan returns the ledger after borrowing amount.
func (l Ledger) ApplyLoan(amount money.Amount) Ledger {
	l.MoneyLeft = l.MoneyLeft.Add(amount)
	l.Debt = l.Debt.Add(amount)
	return l
}

// Validate returns a user facing message when any balance is negative.
func (l Ledger) Validate() string {
	switch {
	case l.MoneyLeft.IsNegative():
		return "Money left cannot be negative"
	case l.MoneySpent.IsNegative():
		return "Money spent cannot be negative"
	case l.Debt.IsNegative():
		return "Debt cannot be negative"
	}
	return ""
}

// Receipt describes a completed transaction.
type Receipt struct {
	Kind    events.Kind      `json:"kind"`
	Athlete *athlete.Athlete `json:"athlete,omitempty"`
	Amount  money.Amount     `json:"amount"`
	Before  Ledger           `json:"before"`
	After   Ledger           `json:"after"`
}
