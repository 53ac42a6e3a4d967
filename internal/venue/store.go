package venue

import (
	"context"
	"strings"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/entity"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// Store is the venue collection.
type Store struct {
	*entity.Store[Venue]
}

var (
	_ entity.Loadable[Venue]   = (*Store)(nil)
	_ entity.Searchable[Venue] = (*Store)(nil)
	_ entity.Mutable[Venue]    = (*Store)(nil)
)

func NewStore(transport api.Transport, metrics metrics.Metrics) *Store {
	return &Store{entity.New(transport, metrics, entity.Options[Venue]{
		Resource:  api.ResourceVenue,
		Category:  api.CategoryVenue,
		WithImage: withImage,
	})}
}

// Create requires a name, a non-negative capacity and an image.
func (s *Store) Create(ctx context.Context, v Venue, image *api.Image) result.Result[result.None] {
	if msg := check(v); msg != "" {
		return result.Rejected[result.None](msg)
	}
	if image == nil && strings.TrimSpace(v.Image) == "" {
		return result.Rejected[result.None]("An image is required")
	}
	v.ID = 0
	return s.Store.Create(ctx, v, image)
}

// Update replaces the venue. When neither image nor v.Image is set the server
// keeps the stored image.
func (s *Store) Update(ctx context.Context, v Venue, image *api.Image) result.Result[result.None] {
	if v.ID == 0 {
		return result.Rejected[result.None]("Venue id is required")
	}
	if msg := check(v); msg != "" {
		return result.Rejected[result.None](msg)
	}
	return s.Store.Update(ctx, v, image)
}

func check(v Venue) string {
	if strings.TrimSpace(v.Name) == "" {
		return "Name is required"
	}
	if v.Capacity < 0 {
		return "Capacity cannot be negative"
	}
	return ""
}
