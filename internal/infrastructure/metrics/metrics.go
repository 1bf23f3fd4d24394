// Package metrics exposes Prometheus instrumentation for the flight search
// service. Collectors are registered on the default registry at init time
// and served on /metrics.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// SearchesTotal counts flight search requests reaching the use case.
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flight_searches_total",
		Help: "The total number of flight search requests",
	})

	// SearchFailuresTotal counts flight searches that failed after passing
	// request validation.
	SearchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "flight_search_failures_total",
		Help: "The total number of failed flight searches",
	})

	// SearchDurationSeconds observes end-to-end search latency.
	SearchDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "flight_search_duration_seconds",
		Help:    "End-to-end flight search duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// UpstreamRequestsTotal counts outbound calls to the travel-data
	// provider by endpoint and outcome.
	UpstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "The total number of upstream provider requests",
	}, []string{"endpoint", "outcome"})
)

// Outcome label values for UpstreamRequestsTotal.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Handler returns the Prometheus scrape endpoint as an echo handler.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
