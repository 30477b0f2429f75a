// Package metrics provides Prometheus metrics for the stationator application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	// Registry is the Prometheus registry for this metrics instance
	Registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// NS API fetch metrics
	TripFetchesTotal   *prometheus.CounterVec
	TripCacheHitsTotal prometheus.Counter

	// Prewarm metrics
	PrewarmCyclesTotal prometheus.Counter
	PrewarmErrorsTotal prometheus.Counter
}

// New creates and registers all application metrics with a new registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	httpRequestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationator_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stationator_http_request_duration_seconds",
			Help:    "HTTP request latency distribution",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	tripFetchesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stationator_trip_fetches_total",
			Help: "Number of trip fetches against the NS API by station pair and outcome",
		},
		[]string{"origin", "destination", "outcome"},
	)

	tripCacheHitsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stationator_trip_cache_hits_total",
		Help: "Number of trip fetches served from the in-memory cache",
	})

	prewarmCyclesTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stationator_prewarm_cycles_total",
		Help: "Number of completed cache prewarm cycles",
	})

	prewarmErrorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stationator_prewarm_errors_total",
		Help: "Number of prewarm fetches that failed",
	})

	// Register all metrics with the custom registry
	registry.MustRegister(
		httpRequestsTotal,
		httpRequestDuration,
		tripFetchesTotal,
		tripCacheHitsTotal,
		prewarmCyclesTotal,
		prewarmErrorsTotal,
	)

	return &Metrics{
		Registry:            registry,
		HTTPRequestsTotal:   httpRequestsTotal,
		HTTPRequestDuration: httpRequestDuration,
		TripFetchesTotal:    tripFetchesTotal,
		TripCacheHitsTotal:  tripCacheHitsTotal,
		PrewarmCyclesTotal:  prewarmCyclesTotal,
		PrewarmErrorsTotal:  prewarmErrorsTotal,
	}
}
