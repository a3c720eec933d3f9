package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("test", reg)

	m.ObserveHTTP("GET", "/api/v1/providers", "200", 10*time.Millisecond)
	m.ObserveAPI("list_providers", "200", 5*time.Millisecond)
	m.SetActiveSessions(3)
	m.ObserveSubmission("confirmed")
	m.ObserveSubmission("failed")
	m.IncStaleRefresh()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/api/v1/providers", "200")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.apiRequestsTotal.WithLabelValues("list_providers", "200")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.submissionsTotal.WithLabelValues("failed")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.staleRefreshesTotal))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveHTTP("GET", "/", "200", time.Second)
	m.ObserveAPI("op", "500", time.Second)
	m.SetActiveSessions(1)
	m.ObserveSubmission("confirmed")
	m.IncStaleRefresh()
}
