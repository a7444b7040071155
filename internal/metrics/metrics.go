// Package metrics exposes prometheus instrumentation for the resolution
// engine's HTTP surface.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	resolutionTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stackscope_resolutions_total",
			Help: "Number of resolution queries by target category.",
		},
		[]string{"category"},
	)

	resolutionDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stackscope_resolution_duration_seconds",
			Help:    "Time taken to answer a resolution query.",
			Buckets: prometheus.DefBuckets,
		},
	)

	catalogTechnologies = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stackscope_catalog_technologies",
			Help: "Number of technologies loaded per category.",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(
		resolutionTotal,
		resolutionDuration,
		catalogTechnologies,
	)
}

// ObserveResolution records one resolution query against a target category.
func ObserveResolution(category string, elapsed time.Duration) {
	resolutionTotal.WithLabelValues(category).Inc()
	resolutionDuration.Observe(elapsed.Seconds())
}

// SetCatalogSize records the loaded catalog's per-category technology counts.
func SetCatalogSize(counts map[string]int) {
	for category, count := range counts {
		catalogTechnologies.WithLabelValues(category).Set(float64(count))
	}
}

// Handler serves the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
