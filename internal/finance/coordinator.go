package finance

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/events"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/money"
	"github.com/mauv0809/fighter-franchise/internal/notifier"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// AthleteRoster is the part of the athlete store the coordinator uses.
type AthleteRoster interface {
	LoadAll(ctx context.Context) result.Result[[]athlete.Athlete]
	Stale() bool
	Find(id int) (athlete.Athlete, bool)
	SetPurchased(ctx context.Context, a athlete.Athlete, purchased bool) result.Result[result.None]
}

// LedgerStore is the part of the finance store the coordinator uses.
type LedgerStore interface {
	LoadAll(ctx context.Context) result.Result[[]Ledger]
	Stale() bool
	Ledger() (Ledger, bool)
	Update(ctx context.Context, l Ledger) result.Result[result.None]
}

var (
	_ AthleteRoster = (*athlete.Store)(nil)
	_ LedgerStore   = (*Store)(nil)
)

// Coordinator applies purchases, sales and loans across the athlete and
// finance stores. Only one transaction runs at a time.
type Coordinator struct {
	mu        sync.Mutex
	athletes  AthleteRoster
	ledger    LedgerStore
	publisher events.Publisher
	notifier  notifier.Notifier
	metrics   metrics.Metrics
	now       func() time.Time
}

// NewCoordinator wires the stores together. publisher, notifier and metrics
// may be nil.
func NewCoordinator(athletes AthleteRoster, ledger LedgerStore, publisher events.Publisher, notify notifier.Notifier, m metrics.Metrics) *Coordinator {
	c := &Coordinator{
		athletes:  athletes,
		ledger:    ledger,
		publisher: publisher,
		notifier:  notify,
		metrics:   m,
		now:       time.Now,
	}
	if c.publisher == nil {
		c.publisher = events.Nop{}
	}
	if c.notifier == nil {
		c.notifier = notifier.Nop{}
	}
	return c
}

// Purchase buys the athlete. It is rejected without any write when the
// athlete is unknown or already owned, or when the franchise cannot afford it.
func (c *Coordinator) Purchase(ctx context.Context, athleteID int) result.Result[Receipt] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg := c.resync(ctx); msg != "" {
		return c.fail(events.KindPurchase, msg)
	}
	before, ok := c.ledger.Ledger()
	if !ok {
		return c.reject(events.KindPurchase, "No finance ledger loaded")
	}
	a, ok := c.athletes.Find(athleteID)
	if !ok {
		return c.reject(events.KindPurchase, fmt.Sprintf("No athlete found with id %d", athleteID))
	}
	if a.Purchased {
		return c.reject(events.KindPurchase, fmt.Sprintf("%s is already purchased", a.Name))
	}
	if before.MoneyLeft.LessThan(a.Price) {
		return c.reject(events.KindPurchase, "Insufficient funds")
	}
	return c.commit(ctx, events.KindPurchase, &a, a.Price, before, before.ApplyPurchase(a.Price))
}

// Sell releases an owned athlete and credits its price.
func (c *Coordinator) Sell(ctx context.Context, athleteID int) result.Result[Receipt] {
	c.mu.Lock()
	defer c.mu.Unlock()

	if msg := c.resync(ctx); msg != "" {
		return c.fail(events.KindSale, msg)
	}
	before, ok := c.ledger.Ledger()
	if !ok {
		return c.reject(events.KindSale, "No finance ledger loaded")
	}
	a, ok := c.athletes.Find(athleteID)
	if !ok {
		return c.reject(events.KindSale, fmt.Sprintf("No athlete found with id %d", athleteID))
	}
	if !a.Purchased {
		return c.reject(events.KindSale, fmt.Sprintf("%s is not owned by the franchise", a.Name))
	}
	return c.commit(ctx, events.KindSale, &a, a.Price, before, before.ApplySale(a.Price))
}

// RequestLoan borrows the amount in raw, which must be a positive number.
func (c *Coordinator) RequestLoan(ctx context.Context, raw string) result.Result[Receipt] {
	c.mu.Lock()
	defer c.mu.Unlock()

	parsed := ParseLoanAmount(raw)
	if !parsed.Success() {
		return c.reject(events.KindLoan, parsed.Message())
	}
	amount, _ := parsed.Data()
	if msg := c.resync(ctx); msg != "" {
		return c.fail(events.KindLoan, msg)
	}
	before, ok := c.ledger.Ledger()
	if !ok {
		return c.reject(events.KindLoan, "No finance ledger loaded")
	}
	return c.commit(ctx, events.KindLoan, nil, amount, before, before.ApplyLoan(amount))
}

// ParseLoanAmount reads raw as a loan amount, rejecting anything that is not
// a positive number.
func ParseLoanAmount(raw string) result.Result[money.Amount] {
	amount, err := money.Parse(raw)
	if err != nil || !amount.IsPositive() {
		return result.Rejected[money.Amount]("Loan amount must be a positive number")
	}
	return result.OK(amount)
}

// commit writes the athlete flip first and the ledger second. When the
// ledger write fails the athlete is written back with its previous flag.
func (c *Coordinator) commit(ctx context.Context, kind events.Kind, a *athlete.Athlete, amount money.Amount, before, after Ledger) result.Result[Receipt] {
	if msg := after.Validate(); msg != "" {
		return c.reject(kind, msg)
	}

	var notes []string
	if a != nil {
		res := c.athletes.SetPurchased(ctx, *a, !a.Purchased)
		if res.Success() && res.Message() != "" {
			notes = append(notes, res.Message())
		}
		if !res.Success() {
			c.count(kind, res.Kind())
			if res.Kind() == result.KindRejected {
				return result.Recast[Receipt](res)
			}
			return result.Err[Receipt](fmt.Sprintf("Could not update %s: %s", a.Name, res.Message()))
		}
	}

	res := c.ledger.Update(ctx, after)
	if !res.Success() {
		msg := "Finance update failed: " + res.Message()
		if a != nil {
			msg += c.compensate(ctx, *a)
		}
		c.count(kind, result.KindErr)
		log.Error("Transaction failed", "kind", kind, "error", msg)
		return result.Err[Receipt](msg)
	}
	if res.Message() != "" {
		notes = append(notes, res.Message())
	}

	// Prefer the records read back from the server. While a store is stale
	// its items predate this transaction, so the computed values are used.
	receipt := Receipt{Kind: kind, Amount: amount, Before: before, After: after}
	if a != nil {
		updated := *a
		updated.Purchased = !a.Purchased
		if found, ok := c.athletes.Find(a.ID); ok && !c.athletes.Stale() {
			updated = found
		}
		receipt.Athlete = &updated
	}
	if l, ok := c.ledger.Ledger(); ok && !c.ledger.Stale() {
		receipt.After = l
	}

	c.count(kind, result.KindOK)
	log.Info("Transaction completed", "kind", kind, "amount", amount.String(), "moneyLeft", receipt.After.MoneyLeft.String())
	c.announce(ctx, receipt)
	if len(notes) > 0 {
		return result.OKWithMessage(receipt, strings.Join(notes, "; "))
	}
	return result.OK(receipt)
}

// resync reloads a store whose last write was not read back, so that a
// transaction never checks a balance or ownership flag the server has moved past.
func (c *Coordinator) resync(ctx context.Context) string {
	if c.athletes.Stale() {
		if res := c.athletes.LoadAll(ctx); !res.Success() {
			return "Athletes are out of date and could not be reloaded: " + res.Message()
		}
	}
	if c.ledger.Stale() {
		if res := c.ledger.LoadAll(ctx); !res.Success() {
			return "Finance ledger is out of date and could not be reloaded: " + res.Message()
		}
	}
	return ""
}

// compensate restores the athlete record a was read as and describes the outcome.
func (c *Coordinator) compensate(ctx context.Context, a athlete.Athlete) string {
	res := c.athletes.SetPurchased(ctx, a, a.Purchased)
	if !res.Success() {
		log.Error("Rollback of athlete failed", "athleteID", a.ID, "error", res.Message())
		return fmt.Sprintf("; restoring %s also failed: %s", a.Name, res.Message())
	}
	log.Warn("Athlete change rolled back", "athleteID", a.ID)
	return fmt.Sprintf("; %s was restored", a.Name)
}

func (c *Coordinator) fail(kind events.Kind, msg string) result.Result[Receipt] {
	c.count(kind, result.KindErr)
	log.Error("Transaction aborted", "kind", kind, "error", msg)
	return result.Err[Receipt](msg)
}

func (c *Coordinator) reject(kind events.Kind, msg string) result.Result[Receipt] {
	c.count(kind, result.KindRejected)
	log.Debug("Transaction rejected", "kind", kind, "reason", msg)
	return result.Rejected[Receipt](msg)
}

func (c *Coordinator) count(kind events.Kind, outcome result.Kind) {
	if c.metrics != nil {
		c.metrics.IncTransactions(string(kind), outcome.String())
	}
}

// announce publishes and notifies. Failures are logged only.
func (c *Coordinator) announce(ctx context.Context, r Receipt) {
	tx := Event(r, c.now())
	if err := c.publisher.Publish(ctx, tx); err != nil {
		log.Warn("Could not publish transaction", "kind", r.Kind, "error", err)
	}
	if err := c.notifier.NotifyTransaction(ctx, tx); err != nil {
		log.Warn("Could not send transaction notification", "kind", r.Kind, "error", err)
	}
}

// Event converts a receipt into the transaction event published for it.
func Event(r Receipt, at time.Time) events.Transaction {
	tx := events.Transaction{
		ID:         uuid.NewString(),
		Kind:       r.Kind,
		Amount:     r.Amount.String(),
		MoneyLeft:  r.After.MoneyLeft.String(),
		MoneySpent: r.After.MoneySpent.String(),
		Debt:       r.After.Debt.String(),
		OccurredAt: at.UTC(),
	}
	if r.Athlete != nil {
		tx.AthleteID = r.Athlete.ID
		tx.AthleteName = r.Athlete.Name
	}
	return tx
}
