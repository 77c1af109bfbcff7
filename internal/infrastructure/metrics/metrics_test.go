package metrics

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ObserveSourceFetch(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveSourceFetch(time.Now(), nil)
	m.ObserveSourceFetch(time.Now(), errors.New("boom"))
	m.ObserveSourceFetch(time.Now(), errors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SourceFetches.WithLabelValues("success")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SourceFetches.WithLabelValues("failure")))
}

func TestMetrics_ObserveHTTPRequest_StatusClass(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/doctors", http.StatusOK, time.Now())
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/doctors", http.StatusNotFound, time.Now())
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/doctors", http.StatusNotFound, time.Now())

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/doctors", "2xx")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/api/v1/doctors", "4xx")))
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
