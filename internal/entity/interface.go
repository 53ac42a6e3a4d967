package entity

import (
	"context"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/result"
)

// Record is a server-backed entity with a server assigned id.
type Record interface {
	RecordID() int
}

// Loadable is a collection that can be fully re-fetched from the server.
type Loadable[T any] interface {
	LoadAll(ctx context.Context) result.Result[[]T]
	Snapshot() State[T]
}

// Searchable is a collection with a server side name search.
type Searchable[T any] interface {
	SearchByName(ctx context.Context, query string) result.Result[[]T]
}

// Mutable is a collection whose records are replaced wholesale on every write.
type Mutable[T any] interface {
	Create(ctx context.Context, record T, image *api.Image) result.Result[result.None]
	Update(ctx context.Context, record T, image *api.Image) result.Result[result.None]
	DeleteByID(ctx context.Context, id int) result.Result[result.None]
}
