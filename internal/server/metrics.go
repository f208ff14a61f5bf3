package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kpi_dashboard_requests_total",
			Help: "HTTP requests by endpoint and status code",
		},
		[]string{"endpoint", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kpi_dashboard_request_duration_seconds",
			Help:    "HTTP request latency by endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	regenerationsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kpi_dashboard_regenerations_total",
			Help: "Seed regenerations requested by sessions",
		},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kpi_dashboard_exports_total",
			Help: "Data exports by format",
		},
		[]string{"format"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts and times every request to the wrapped endpoint.
func instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rec, r)
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
		requestsTotal.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
	}
}
