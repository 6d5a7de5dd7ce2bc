// Package metrics provides Prometheus instrumentation for the calculator service.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/the-cloud-architect/contractor-calculator/pkg/mathutil"
)

var (
	// AllocationsTotal counts allocations served, partitioned by outcome.
	AllocationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contractorcalc_allocations_total",
		Help: "Total number of allocations computed",
	}, []string{"outcome"})

	// DegenerateInputsTotal counts requests rejected for a zero base cost.
	DegenerateInputsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contractorcalc_degenerate_inputs_total",
		Help: "Allocation requests rejected because the total base cost was zero",
	})

	// TrendSweepsTotal counts trend series computed.
	TrendSweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contractorcalc_trend_sweeps_total",
		Help: "Total number of price sweeps computed",
	})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contractorcalc_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contractorcalc_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Outcome maps a margin to its metric label. Margins within currency
// tolerance of zero count as break-even.
func Outcome(margin float64) string {
	switch {
	case mathutil.IsZero(margin):
		return "break_even"
	case mathutil.IsPositive(margin):
		return "profit"
	default:
		return "loss"
	}
}

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

		// Collapse static asset paths into one label to keep cardinality
		// bounded; the API surface is a handful of fixed paths.
		path := r.URL.Path
		if !strings.HasPrefix(path, "/api/") && path != "/metrics" {
			path = "/static"
		}
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
