// Package metrics records Prometheus metrics for path queries.
//
// Metrics:
//
//	navgraph_queries_total{algorithm,outcome}      counter
//	navgraph_query_duration_seconds{algorithm}     histogram
//	navgraph_path_hops{algorithm}                  histogram (path length - 1)
//
// A nil *Recorder is valid and records nothing, so callers never need to
// branch on whether metrics are enabled.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeFound  = "found"
	OutcomeNoPath = "no_path"
	OutcomeError  = "error"
)

// Recorder groups the query collectors registered on one registry.
type Recorder struct {
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	hops     *prometheus.HistogramVec
}

// New registers the query collectors on reg. Registering twice on the same
// registry panics, as with any promauto collector.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		// queries counts queries by algorithm and outcome
		queries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "navgraph_queries_total",
			Help: "Total path queries by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),

		// duration tracks query latency
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "navgraph_query_duration_seconds",
			Help:    "Path query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),

		// hops tracks the length of returned paths
		hops: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "navgraph_path_hops",
			Help:    "Number of edges in returned paths",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50, 100, 1000},
		}, []string{"algorithm"}),
	}
}

// Observe records one finished query. hops is only recorded for OutcomeFound.
func (r *Recorder) Observe(algorithm, outcome string, hops int, d time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(algorithm, outcome).Inc()
	r.duration.WithLabelValues(algorithm).Observe(d.Seconds())
	if outcome == OutcomeFound {
		r.hops.WithLabelValues(algorithm).Observe(float64(hops))
	}
}
