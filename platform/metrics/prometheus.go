// Package metrics provides Prometheus metrics for the parts API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parts_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "parts_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "route"},
	)

	// Catalog metrics
	CatalogRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "parts_catalog_records",
			Help: "Number of records in the loaded catalog",
		},
	)

	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parts_search_results",
			Help:    "Number of records returned by search requests",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		},
	)
)

// RecordRequest records a served HTTP request.
func RecordRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// SetCatalogRecords records the size of the loaded catalog.
func SetCatalogRecords(n int) {
	CatalogRecords.Set(float64(n))
}

// ObserveSearchResults records the size of a search result.
func ObserveSearchResults(n int) {
	SearchResults.Observe(float64(n))
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
