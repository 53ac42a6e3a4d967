package metrics

// Metrics is what the transport, the stores, the coordinator and the stub
// server record. Service backs it with Prometheus, Mock with counters.
type Metrics interface {
	IncAPIRequests(resource, method, outcome string)
	ObserveAPIDuration(resource string, seconds float64)
	IncResyncs(resource string)
	IncStoreErrors(resource string)
	IncTransactions(kind, outcome string)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	IncServedRequests(route string, status int)
	SetStartupTime(duration float64)
}
