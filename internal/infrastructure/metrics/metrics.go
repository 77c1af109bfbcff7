package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks HTTP traffic, the record source fetch and session activity.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	SourceFetches       *prometheus.CounterVec
	SourceFetchDuration prometheus.Histogram
	DoctorsAdmitted     prometheus.Counter
	DoctorsRejected     prometheus.Counter
	SessionEvents       *prometheus.CounterVec
}

// New registers every directory metric on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "directory_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
		SourceFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_source_fetches_total",
			Help: "Record source fetches by outcome",
		}, []string{"outcome"}),
		SourceFetchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "directory_source_fetch_duration_seconds",
			Help:    "Duration of the record source fetch",
			Buckets: prometheus.DefBuckets,
		}),
		DoctorsAdmitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_doctors_admitted_total",
			Help: "Doctor records admitted into the directory",
		}),
		DoctorsRejected: factory.NewCounter(prometheus.CounterOpts{
			Name: "directory_doctors_rejected_total",
			Help: "Doctor records rejected by validation",
		}),
		SessionEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "directory_session_events_total",
			Help: "Browse session events by type",
		}, []string{"type"}),
	}
}

// ObserveSourceFetch records one fetch. Call with time.Now() taken before it.
func (m *Metrics) ObserveSourceFetch(start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.SourceFetches.WithLabelValues(outcome).Inc()
	m.SourceFetchDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, start time.Time) {
	m.HTTPRequests.WithLabelValues(method, route, statusClass(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementSessionEvent(eventType string) {
	m.SessionEvents.WithLabelValues(eventType).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
