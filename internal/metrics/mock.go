package metrics

import (
	"strconv"
	"sync"
)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu               sync.Mutex
	apiRequests      map[string]int
	apiDurations     []float64
	resyncs          map[string]int
	storeErrors      map[string]int
	transactions     map[string]int
	slackNotifSent   int
	slackNotifFailed int
	servedRequests   map[string]int
	startupTime      float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		apiRequests:    make(map[string]int),
		apiDurations:   make([]float64, 0),
		resyncs:        make(map[string]int),
		storeErrors:    make(map[string]int),
		transactions:   make(map[string]int),
		servedRequests: make(map[string]int),
	}
}

func (m *Mock) IncAPIRequests(resource, method, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiRequests[resource+" "+method+" "+outcome]++
}

func (m *Mock) ObserveAPIDuration(resource string, seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apiDurations = append(m.apiDurations, seconds)
}

func (m *Mock) IncResyncs(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resyncs[resource]++
}

func (m *Mock) IncStoreErrors(resource string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.storeErrors[resource]++
}

func (m *Mock) IncTransactions(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[kind+" "+outcome]++
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) IncServedRequests(route string, status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.servedRequests[route+" "+strconv.Itoa(status)]++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// APIRequests returns how often IncAPIRequests was called with the given labels.
func (m *Mock) APIRequests(resource, method, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.apiRequests[resource+" "+method+" "+outcome]
}

// Resyncs returns the number of reloads recorded for a resource.
func (m *Mock) Resyncs(resource string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resyncs[resource]
}

// StoreErrors returns the number of store failures recorded for a resource.
func (m *Mock) StoreErrors(resource string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.storeErrors[resource]
}

// Transactions returns how often a transaction kind ended with the given outcome.
func (m *Mock) Transactions(kind, outcome string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions[kind+" "+outcome]
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

// ServedRequests returns the number of served requests recorded for a route and status.
func (m *Mock) ServedRequests(route string, status int) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.servedRequests[route+" "+strconv.Itoa(status)]
}
