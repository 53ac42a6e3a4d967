package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/fighter-franchise/internal/cache"
	"github.com/mauv0809/fighter-franchise/internal/catalog"
	"github.com/mauv0809/fighter-franchise/internal/config"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
)

type Server struct {
	Store          catalog.Store
	Cache          cache.Cache
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         chi.Router
}

// uploadResponse is the body of POST /ImageUpload/{category}.
type uploadResponse struct {
	Success  bool   `json:"success"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}
