package athlete

import (
	"context"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/entity"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// Store is the athlete collection. Create and Update check required fields
// before anything is sent.
type Store struct {
	*entity.Store[Athlete]
}

var (
	_ entity.Loadable[Athlete]   = (*Store)(nil)
	_ entity.Searchable[Athlete] = (*Store)(nil)
	_ entity.Mutable[Athlete]    = (*Store)(nil)
)

func NewStore(transport api.Transport, metrics metrics.Metrics) *Store {
	return &Store{entity.New(transport, metrics, entity.Options[Athlete]{
		Resource:  api.ResourceAthlete,
		Category:  api.CategoryAthlete,
		WithImage: WithImage,
	})}
}

// Create requires a name, a gender, a non-negative price and an image, either
// as an upload or an already stored file name.
func (s *Store) Create(ctx context.Context, a Athlete, image *api.Image) result.Result[result.None] {
	if msg := validate(a); msg != "" {
		return reject(msg)
	}
	if image == nil && strings.TrimSpace(a.Image) == "" {
		return reject("An image is required")
	}
	a.ID = 0
	return s.Store.Create(ctx, a, image)
}

// Update submits a as the full replacement of the stored record.
func (s *Store) Update(ctx context.Context, a Athlete, image *api.Image) result.Result[result.None] {
	if a.ID == 0 {
		return reject("Athlete id is required")
	}
	if msg := validate(a); msg != "" {
		return reject(msg)
	}
	return s.Store.Update(ctx, a, image)
}

// SetPurchased writes a with its purchased flag set to purchased.
func (s *Store) SetPurchased(ctx context.Context, a Athlete, purchased bool) result.Result[result.None] {
	a.Purchased = purchased
	return s.Update(ctx, a, nil)
}

func validate(a Athlete) string {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return "Name is required"
	case strings.TrimSpace(a.Gender) == "":
		return "Gender is required"
	case a.Price.IsNegative():
		return "Price cannot be negative"
	}
	return ""
}

func reject(msg string) result.Result[result.None] {
	log.Debug("Athlete rejected", "reason", msg)
	return result.Rejected[result.None](msg)
}
