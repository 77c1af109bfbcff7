package middleware

import (
	"net/http"
	"time"

	"go-doctor-directory/internal/infrastructure/metrics"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// LoggingMiddleware logs every request and records it in the HTTP metrics,
// labelled by route template rather than raw path.
type LoggingMiddleware struct {
	log     *logrus.Logger
	metrics *metrics.Metrics
}

func NewLoggingMiddleware(log *logrus.Logger, metrics *metrics.Metrics) *LoggingMiddleware {
	return &LoggingMiddleware{log: log, metrics: metrics}
}

func (m *LoggingMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		route := routeLabel(r)
		m.metrics.ObserveHTTPRequest(r.Method, route, rw.statusCode, start)
		m.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"route":    route,
			"path":     r.URL.Path,
			"status":   rw.statusCode,
			"duration": time.Since(start).String(),
		}).Info("HTTP request")
	})
}

// routeLabel names the matched route. Router middleware only runs after a
// match, so CurrentRoute is set; routes without a path, such as the CORS
// preflight catch-all, are labelled by their name to keep raw paths out of
// the metric labels.
func routeLabel(r *http.Request) string {
	current := mux.CurrentRoute(r)
	if tmpl, err := current.GetPathTemplate(); err == nil {
		return tmpl
	}
	return current.GetName()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rw *statusRecorder) WriteHeader(statusCode int) {
	rw.statusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}
