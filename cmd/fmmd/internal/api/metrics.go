package api

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fmmd_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fmmd_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	connectionRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fmmd_connection_rejected_total",
		Help: "Requests rejected before reaching a handler",
	}, []string{"reason"}) // bounded: "rate_limit", "origin"

	fieldsComputed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fmmd_fields_computed_total",
		Help: "Fields computed, by kind",
	}, []string{"kind"}) // bounded: "unsigned", "signed"

	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fmmd_solve_duration_seconds",
		Help:    "Time spent inside fmm.UnsignedDistance / fmm.SignedDistance",
		Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 30},
	}, []string{"kind"})

	wsConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fmmd_websocket_connections_active",
		Help: "Currently active progress WebSocket connections",
	})
)

func recordConnectionRejected(reason string) {
	connectionRejected.WithLabelValues(reason).Inc()
}

func recordFieldComputed(kind string, d time.Duration) {
	fieldsComputed.WithLabelValues(kind).Inc()
	solveDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// metricsMiddleware records per-route latency and status, keyed by the
// chi route pattern rather than the raw path, to keep label cardinality
// bounded.
func metricsMiddleware(routePattern func(r *http.Request) string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(sw, r)
			endpoint := routePattern(r)
			requestLatency.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
			requestTotal.WithLabelValues(r.Method, endpoint, http.StatusText(sw.status)).Inc()
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
