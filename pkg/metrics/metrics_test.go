package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveHTTPRequest("GET", "/api/v1/x", "200", 10*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/x", "200", 20*time.Millisecond)
	m.ObserveDBQuery("select", time.Millisecond, nil)
	m.ObserveDBQuery("select", time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/x", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("select")))
}

func TestNewWithRegistry_IsolatedRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewWithRegistry("a", prometheus.NewRegistry())
		NewWithRegistry("a", prometheus.NewRegistry())
	})
}
