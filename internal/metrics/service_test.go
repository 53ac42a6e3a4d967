package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServiceCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)

	s.IncAPIRequests("athlete", http.MethodGet, "ok")
	s.IncAPIRequests("athlete", http.MethodGet, "ok")
	s.IncTransactions("purchase", "rejected")
	s.IncServedRequests("/athlete", http.StatusCreated)

	assert.Equal(t, float64(2), testutil.ToFloat64(s.APIRequests.WithLabelValues("athlete", http.MethodGet, "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.Transactions.WithLabelValues("purchase", "rejected")))
	assert.Equal(t, float64(1), testutil.ToFloat64(s.ServedRequests.WithLabelValues("/athlete", "201")))
}

func TestMetricsHandlerExposesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewService(reg)
	s.IncResyncs("venue")

	rr := httptest.NewRecorder()
	NewMetricsHandler(reg).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `franchise_store_resyncs_total{resource="venue"} 1`)
}
