package catalog

import (
	"context"

	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/mauv0809/fighter-franchise/internal/venue"
)

// Store defines the persistence the stub API serves from.
type Store interface {
	ListAthletes(ctx context.Context) ([]athlete.Athlete, error)
	GetAthlete(ctx context.Context, id int) (athlete.Athlete, error)
	SearchAthletes(ctx context.Context, query string) ([]athlete.Athlete, error)
	CreateAthlete(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error)
	UpdateAthlete(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error)
	DeleteAthlete(ctx context.Context, id int) error

	ListVenues(ctx context.Context) ([]venue.Venue, error)
	GetVenue(ctx context.Context, id int) (venue.Venue, error)
	SearchVenues(ctx context.Context, query string) ([]venue.Venue, error)
	CreateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error)
	UpdateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error)
	DeleteVenue(ctx context.Context, id int) error

	ListLedgers(ctx context.Context) ([]finance.Ledger, error)
	CreateLedger(ctx context.Context, l finance.Ledger) (finance.Ledger, error)
	UpdateLedger(ctx context.Context, l finance.Ledger) (finance.Ledger, error)
}
