package entity

import (
	"sync"

	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
)

// State is a copy of everything a view needs to render a store.
type State[T any] struct {
	Items          []T
	SearchResults  []T
	SearchActive   bool
	IsLoading      bool
	ErrorMessage   string
	HasInitialized bool
}

// Visible is what a list view shows: the search results while a search is
// active, the full collection otherwise.
func (s State[T]) Visible() []T {
	if s.SearchActive {
		return s.SearchResults
	}
	return s.Items
}

// Options describes the resource a Store manages.
type Options[T any] struct {
	Resource api.Resource
	// Category enables image uploads on create and update. Empty disables them.
	Category api.Category
	// WithImage returns a copy of the record carrying the uploaded file name.
	WithImage func(record T, fileName string) T
}

// Store is an in-memory, server synchronized collection of one resource.
type Store[T Record] struct {
	transport api.Transport
	metrics   metrics.Metrics
	opts      Options[T]

	// opMu serializes operations, including the resync that follows a write.
	opMu sync.Mutex

	// mu guards the fields below. It is never held across network calls.
	mu             sync.RWMutex
	items          []T
	searchResults  []T
	searchActive   bool
	isLoading      bool
	errorMessage   string
	hasInitialized bool
	// stale is set when a write went through but the resync after it failed,
	// so items no longer match the server.
	stale bool
}
