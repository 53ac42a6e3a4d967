package finance

import (
	"context"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/entity"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/money"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// Store holds the finance ledger. It has no search and no delete, and the
// ledger has no image.
type Store struct {
	store *entity.Store[Ledger]
}

var _ entity.Loadable[Ledger] = (*Store)(nil)

func NewStore(transport api.Transport, metrics metrics.Metrics) *Store {
	return &Store{store: entity.New(transport, metrics, entity.Options[Ledger]{
		Resource: api.ResourceFinance,
	})}
}

func (s *Store) LoadAll(ctx context.Context) result.Result[[]Ledger] {
	return s.store.LoadAll(ctx)
}

func (s *Store) Snapshot() entity.State[Ledger] {
	return s.store.Snapshot()
}

// Stale reports whether the last ledger write was not read back.
func (s *Store) Stale() bool {
	return s.store.Stale()
}

// Ledger returns the synchronized ledger. The server serves it as a one
// element collection; extra elements are ignored.
func (s *Store) Ledger() (Ledger, bool) {
	items := s.store.Items()
	if len(items) == 0 {
		return Ledger{}, false
	}
	return items[0], true
}

func (s *Store) Create(ctx context.Context, l Ledger) result.Result[result.None] {
	if msg := l.Validate(); msg != "" {
		return result.Rejected[result.None](msg)
	}
	l.ID = 0
	return s.store.Create(ctx, l, nil)
}

// Update submits l as the full replacement of the ledger.
func (s *Store) Update(ctx context.Context, l Ledger) result.Result[result.None] {
	if l.ID == 0 {
		return result.Rejected[result.None]("Ledger id is required")
	}
	if msg := l.Validate(); msg != "" {
		return result.Rejected[result.None](msg)
	}
	return s.store.Update(ctx, l, nil)
}

// EnsureLedger loads the ledger and creates an empty one when the server
// has none.
func (s *Store) EnsureLedger(ctx context.Context) result.Result[Ledger] {
	loaded := s.LoadAll(ctx)
	if !loaded.Success() {
		return result.Recast[Ledger](loaded)
	}
	if l, ok := s.Ledger(); ok {
		return result.OK(l)
	}

	created := s.Create(ctx, Ledger{MoneyLeft: money.Zero, MoneySpent: money.Zero, Debt: money.Zero})
	if !created.Success() {
		return result.Recast[Ledger](created)
	}
	l, ok := s.Ledger()
	if !ok {
		return result.Err[Ledger]("Finance ledger was created but could not be reloaded")
	}
	return result.OK(l)
}
