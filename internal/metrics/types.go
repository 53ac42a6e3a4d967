package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// The same collectors serve the client and the stub API server; each process
// registers them against its own registerer.
type Service struct {
	APIRequests        *prometheus.CounterVec
	APIDuration        *prometheus.HistogramVec
	Resyncs            *prometheus.CounterVec
	StoreErrors        *prometheus.CounterVec
	Transactions       *prometheus.CounterVec
	SlackNotifSent     prometheus.Counter
	SlackNotifFailed   prometheus.Counter
	ServedRequests     *prometheus.CounterVec
	StartupTimeSeconds prometheus.Gauge
}
