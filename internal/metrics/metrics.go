// Package metrics provides Prometheus instrumentation for the API server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// ComparisonsTotal counts comparison requests that completed successfully.
	ComparisonsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mortgage_compare_comparisons_total",
		Help: "Total number of scenario comparisons computed",
	})

	// SchedulesComputed counts individual amortization schedules computed.
	SchedulesComputed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mortgage_compare_schedules_total",
		Help: "Total number of amortization schedules computed",
	})

	// NonAmortizingRejections counts submitted scenarios rejected because the
	// payment would never cover the interest.
	NonAmortizingRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mortgage_compare_non_amortizing_rejections_total",
		Help: "Scenarios rejected as non-amortizing",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mortgage_compare_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mortgage_compare_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware returns an HTTP middleware that records request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)
		duration := time.Since(start).Seconds()

		// The server registers a fixed set of routes, so the raw path is a
		// safe label.
		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

// statusWriter wraps http.ResponseWriter to capture the status code.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
