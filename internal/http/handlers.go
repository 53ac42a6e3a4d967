package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/fighter-franchise/internal/catalog"
)

// resource binds one REST collection to its catalog operations. Nil
// operations are not routed.
type resource[T any] struct {
	name   string
	list   func(ctx context.Context) ([]T, error)
	get    func(ctx context.Context, id int) (T, error)
	search func(ctx context.Context, query string) ([]T, error)
	create func(ctx context.Context, record T) (T, error)
	update func(ctx context.Context, record T) (T, error)
	delete func(ctx context.Context, id int) error
	id     func(record T) int
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func listHandler[T any](s *Server, res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cached, ok := s.Cache.Get(r.Context(), res.name); ok {
			log.Debug("Serving list from cache", "resource", res.name)
			writeRaw(w, http.StatusOK, cached)
			return
		}
		items, err := res.list(r.Context())
		if err != nil {
			internalError(w, res.name, "list", err)
			return
		}
		body, err := json.Marshal(items)
		if err != nil {
			internalError(w, res.name, "list", err)
			return
		}
		s.Cache.Set(r.Context(), res.name, body)
		writeRaw(w, http.StatusOK, body)
	}
}

func getHandler[T any](res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id must be an integer")
			return
		}
		record, err := res.get(r.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no %s with id %d", res.name, id))
			return
		}
		if err != nil {
			internalError(w, res.name, "get", err)
			return
		}
		writeJSON(w, http.StatusOK, record)
	}
}

// searchHandler answers 404 when nothing matches.
func searchHandler[T any](res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
		matches, err := res.search(r.Context(), name)
		if err != nil {
			internalError(w, res.name, "search", err)
			return
		}
		if len(matches) == 0 {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no %s matching %q", res.name, name))
			return
		}
		writeJSON(w, http.StatusOK, matches)
	}
}

func createHandler[T any](s *Server, res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+res.name+" body")
			return
		}
		created, err := res.create(r.Context(), record)
		if err != nil {
			internalError(w, res.name, "create", err)
			return
		}
		s.Cache.Invalidate(r.Context(), res.name)
		log.Info("Record created", "resource", res.name, "id", res.id(created))
		writeJSON(w, http.StatusCreated, created)
	}
}

func updateHandler[T any](s *Server, res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record T
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			writeError(w, http.StatusBadRequest, "invalid "+res.name+" body")
			return
		}
		if res.id(record) == 0 {
			writeError(w, http.StatusBadRequest, "id is required")
			return
		}
		updated, err := res.update(r.Context(), record)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no %s with id %d", res.name, res.id(record)))
			return
		}
		if err != nil {
			internalError(w, res.name, "update", err)
			return
		}
		s.Cache.Invalidate(r.Context(), res.name)
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteHandler[T any](s *Server, res resource[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "id must be an integer")
			return
		}
		err = res.delete(r.Context(), id)
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("no %s with id %d", res.name, id))
			return
		}
		if err != nil {
			internalError(w, res.name, "delete", err)
			return
		}
		s.Cache.Invalidate(r.Context(), res.name)
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error("Failed to encode response", "error", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
	writeRaw(w, status, body)
}

func writeRaw(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func internalError(w http.ResponseWriter, resource, op string, err error) {
	log.Error("Catalog operation failed", "resource", resource, "op", op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
