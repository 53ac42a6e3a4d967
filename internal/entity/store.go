package entity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/api"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/result"
	"github.com/mauv0809/fighter-franchise/internal/validate"
)

// New creates a store for one resource. The collection starts empty and is
// populated by the first LoadAll.
func New[T Record](transport api.Transport, metrics metrics.Metrics, opts Options[T]) *Store[T] {
	return &Store[T]{
		transport: transport,
		metrics:   metrics,
		opts:      opts,
		items:     []T{},
	}
}

// Resource returns the API resource this store synchronizes.
func (s *Store[T]) Resource() api.Resource {
	return s.opts.Resource
}

// LoadAll replaces the collection with the server's. On failure the previous
// items are kept and the error message is set.
func (s *Store[T]) LoadAll(ctx context.Context) result.Result[[]T] {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.begin()
	defer s.finish()
	return s.loadLocked(ctx)
}

func (s *Store[T]) loadLocked(ctx context.Context) result.Result[[]T] {
	raw := s.transport.Get(ctx, s.opts.Resource)
	items, res := decodeList[T](raw, s.opts.Resource)
	if !res.Success() {
		s.fail("load", res.Message())
		return res
	}

	s.mu.Lock()
	s.items = items
	s.hasInitialized = true
	s.stale = false
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncResyncs(string(s.opts.Resource))
	}
	log.Debug("Collection synchronized", "resource", s.opts.Resource, "count", len(items))
	return res
}

// SearchByName replaces the search results with the server's matches. A blank
// query ends the search and returns the full collection without an API call.
func (s *Store[T]) SearchByName(ctx context.Context, query string) result.Result[[]T] {
	q := strings.TrimSpace(query)
	if q == "" {
		s.mu.Lock()
		s.searchActive = false
		s.searchResults = []T{}
		items := clone(s.items)
		s.mu.Unlock()
		return result.OK(items)
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.begin()
	defer s.finish()

	raw := s.transport.GetByName(ctx, s.opts.Resource, q)
	if raw.Outcome == api.OutcomeNotFound {
		s.setSearchResults([]T{})
		return result.Empty([]T{}, raw.Message)
	}

	matches, res := decodeList[T](raw, s.opts.Resource)
	if !res.Success() {
		s.fail("search", res.Message())
		return res
	}
	s.setSearchResults(matches)
	return res
}

func (s *Store[T]) setSearchResults(matches []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchResults = matches
	s.searchActive = true
}

// GetByID looks up one record on the server. It does not touch the store's
// collections or flags. A missing record is an Empty result with nil data.
func (s *Store[T]) GetByID(ctx context.Context, id int) result.Result[*T] {
	raw := s.transport.GetByID(ctx, s.opts.Resource, id)
	if raw.Outcome == api.OutcomeNotFound {
		return result.Empty[*T](nil, raw.Message)
	}
	if report := validate.Single(raw); !report.Valid {
		return result.Err[*T](report.Error)
	}
	var record T
	if err := json.Unmarshal(raw.Body, &record); err != nil {
		return result.Err[*T](fmt.Sprintf("Invalid %s response: %v", s.opts.Resource, err))
	}
	return result.OK(&record)
}

// Find returns the synchronized record with the given id.
func (s *Store[T]) Find(id int) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Create uploads image when given, posts the record and resynchronizes. The
// POST response is never merged into the collection.
func (s *Store[T]) Create(ctx context.Context, record T, image *api.Image) result.Result[result.None] {
	return s.mutate(ctx, "create", func() api.RawResult {
		return s.transport.Post(ctx, s.opts.Resource, record)
	}, http.StatusCreated, &record, image)
}

// Update replaces the record on the server. Without image the server keeps
// the record's current image.
func (s *Store[T]) Update(ctx context.Context, record T, image *api.Image) result.Result[result.None] {
	return s.mutate(ctx, "update", func() api.RawResult {
		return s.transport.Put(ctx, s.opts.Resource, record)
	}, http.StatusOK, &record, image)
}

// DeleteByID removes a record and resynchronizes. On failure the collection is unchanged.
func (s *Store[T]) DeleteByID(ctx context.Context, id int) result.Result[result.None] {
	return s.mutate(ctx, "delete", func() api.RawResult {
		return s.transport.Delete(ctx, s.opts.Resource, id)
	}, http.StatusNoContent, nil, nil)
}

// mutate runs upload, write and resync as one operation. record is updated in
// place with the uploaded file name before send is called.
func (s *Store[T]) mutate(ctx context.Context, op string, send func() api.RawResult, want int, record *T, image *api.Image) result.Result[result.None] {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.begin()
	defer s.finish()

	if image != nil {
		fileName, res := s.upload(ctx, *image)
		if !res.Success() {
			s.fail(op, res.Message())
			return res
		}
		*record = s.opts.WithImage(*record, fileName)
	}

	raw := send()
	if report := validate.Status(raw, want); !report.Valid {
		s.fail(op, report.Error)
		return result.Err[result.None](report.Error)
	}
	log.Info("Record written", "resource", s.opts.Resource, "op", op)

	if reload := s.loadLocked(ctx); !reload.Success() {
		s.mu.Lock()
		s.stale = true
		s.mu.Unlock()
		return result.OKWithMessage(result.None{}, "Saved, but reloading failed: "+reload.Message())
	}
	return result.Done()
}

func (s *Store[T]) upload(ctx context.Context, image api.Image) (string, result.Result[result.None]) {
	if s.opts.Category == "" || s.opts.WithImage == nil {
		return "", result.Err[result.None](fmt.Sprintf("Images are not supported for %s", s.opts.Resource))
	}
	up := s.transport.UploadImage(ctx, s.opts.Category, image)
	if !up.Success {
		msg := up.Error
		if msg == "" {
			msg = "Image upload failed"
		}
		return "", result.Err[result.None](msg)
	}
	return up.FileName, result.Done()
}

// Snapshot returns a copy of the store's state.
func (s *Store[T]) Snapshot() State[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State[T]{
		Items:          clone(s.items),
		SearchResults:  clone(s.searchResults),
		SearchActive:   s.searchActive,
		IsLoading:      s.isLoading,
		ErrorMessage:   s.errorMessage,
		HasInitialized: s.hasInitialized,
	}
}

// Items returns a copy of the synchronized collection.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Stale reports whether a write succeeded on the server without the
// collection being reloaded afterwards. It is cleared by the next successful load.
func (s *Store[T]) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// ClearError drops the current error message.
func (s *Store[T]) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errorMessage = ""
}

// begin marks the store busy and clears any stale error.
func (s *Store[T]) begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = true
	s.errorMessage = ""
}

func (s *Store[T]) finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
}

func (s *Store[T]) fail(op, message string) {
	s.mu.Lock()
	s.errorMessage = message
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.IncStoreErrors(string(s.opts.Resource))
	}
	log.Warn("Store operation failed", "resource", s.opts.Resource, "op", op, "error", message)
}

func decodeList[T any](raw api.RawResult, resource api.Resource) ([]T, result.Result[[]T]) {
	report := validate.List(raw)
	if !report.Valid {
		return nil, result.Err[[]T](report.Error)
	}
	items := []T{}
	if err := json.Unmarshal(raw.Body, &items); err != nil {
		return nil, result.Err[[]T](fmt.Sprintf("Invalid %s response: %v", resource, err))
	}
	if report.Empty {
		return items, result.Empty([]T{}, fmt.Sprintf("No %s records found", resource))
	}
	return items, result.OK(clone(items))
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
