package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/cache"
	"github.com/mauv0809/fighter-franchise/internal/catalog"
	"github.com/mauv0809/fighter-franchise/internal/config"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/mauv0809/fighter-franchise/internal/metrics"
	"github.com/mauv0809/fighter-franchise/internal/venue"
)

func NewServer(store catalog.Store, listCache cache.Cache, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config) *Server {
	if listCache == nil {
		listCache = cache.Nop{}
	}
	server := &Server{
		Store:          store,
		Cache:          listCache,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         chi.NewRouter(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	handle := func(h http.HandlerFunc) http.Handler {
		return Chain(h, paramsMiddleware, s.instrument)
	}

	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Method(http.MethodGet, "/health", handle(s.HealthCheckHandler()))

	athletes := resource[athlete.Athlete]{
		name:   "athlete",
		list:   s.Store.ListAthletes,
		get:    s.Store.GetAthlete,
		search: s.Store.SearchAthletes,
		create: s.Store.CreateAthlete,
		update: s.Store.UpdateAthlete,
		delete: s.Store.DeleteAthlete,
		id:     func(a athlete.Athlete) int { return a.ID },
	}
	venues := resource[venue.Venue]{
		name:   "venue",
		list:   s.Store.ListVenues,
		get:    s.Store.GetVenue,
		search: s.Store.SearchVenues,
		create: s.Store.CreateVenue,
		update: s.Store.UpdateVenue,
		delete: s.Store.DeleteVenue,
		id:     func(v venue.Venue) int { return v.ID },
	}
	ledgers := resource[finance.Ledger]{
		name:   "finance",
		list:   s.Store.ListLedgers,
		create: s.Store.CreateLedger,
		update: s.Store.UpdateLedger,
		id:     func(l finance.Ledger) int { return l.ID },
	}

	mount(s, athletes, handle)
	mount(s, venues, handle)
	mount(s, ledgers, handle)

	s.Router.Method(http.MethodPost, "/ImageUpload/{category}", handle(s.UploadImageHandler()))
	s.Router.Method(http.MethodGet, "/images/{category}/{file}", handle(s.ServeImageHandler()))
}

// mount registers the REST routes a resource supports.
func mount[T any](s *Server, res resource[T], handle func(http.HandlerFunc) http.Handler) {
	base := "/" + res.name
	s.Router.Method(http.MethodGet, base, handle(listHandler(s, res)))
	s.Router.Method(http.MethodPost, base, handle(createHandler(s, res)))
	s.Router.Method(http.MethodPut, base, handle(updateHandler(s, res)))
	if res.get != nil {
		s.Router.Method(http.MethodGet, base+"/{id}", handle(getHandler(res)))
	}
	if res.search != nil {
		s.Router.Method(http.MethodGet, base+"/byname/{name}", handle(searchHandler(res)))
	}
	if res.delete != nil {
		s.Router.Method(http.MethodDelete, base+"/{id}", handle(deleteHandler(s, res)))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
