package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchise_api_requests_total",
			Help: "The total number of requests sent to the franchise API, by outcome.",
		}, []string{"resource", "method", "outcome"}),
		APIDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "franchise_api_request_duration_seconds",
			Help:    "The duration of requests sent to the franchise API.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"resource"}),
		Resyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchise_store_resyncs_total",
			Help: "The total number of full collection reloads performed by a store.",
		}, []string{"resource"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchise_store_errors_total",
			Help: "The total number of failed store operations.",
		}, []string{"resource"}),
		Transactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchise_finance_transactions_total",
			Help: "The total number of finance transactions, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "franchise_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "franchise_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		ServedRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "franchise_served_requests_total",
			Help: "The total number of requests answered by the stub API server.",
		}, []string{"route", "status"}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "franchise_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.APIRequests,
		s.APIDuration,
		s.Resyncs,
		s.StoreErrors,
		s.Transactions,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.ServedRequests,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncAPIRequests(resource, method, outcome string) {
	s.APIRequests.WithLabelValues(resource, method, outcome).Inc()
}

func (s *Service) ObserveAPIDuration(resource string, seconds float64) {
	s.APIDuration.WithLabelValues(resource).Observe(seconds)
}

func (s *Service) IncResyncs(resource string) {
	s.Resyncs.WithLabelValues(resource).Inc()
}

func (s *Service) IncStoreErrors(resource string) {
	s.StoreErrors.WithLabelValues(resource).Inc()
}

func (s *Service) IncTransactions(kind, outcome string) {
	s.Transactions.WithLabelValues(kind, outcome).Inc()
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) IncServedRequests(route string, status int) {
	s.ServedRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
