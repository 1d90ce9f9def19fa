package metrics

import "github.com/prometheus/client_golang/prometheus"

// Retrieval pipeline Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "totsearch",
			Name:      "searches_total",
			Help:      "Total number of searches",
		},
		[]string{"variant", "status"},
	)

	SearchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "totsearch",
			Name:      "search_duration_seconds",
			Help:      "Whole-search duration in seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"variant"},
	)

	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "totsearch",
			Name:      "probes_total",
			Help:      "Total index probes issued",
		},
		[]string{"origin", "status"},
	)

	ProbeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "totsearch",
			Name:      "probe_duration_seconds",
			Help:      "Single index probe duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"origin"},
	)

	DecomposeRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "totsearch",
			Name:      "decompose_requests_total",
			Help:      "Total decomposition requests to the language-understanding service",
		},
		[]string{"model", "status"},
	)

	DecomposeRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "totsearch",
			Name:      "decompose_request_duration_seconds",
			Help:      "Decomposition request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
		},
		[]string{"model"},
	)

	DecomposeFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "totsearch",
			Name:      "decompose_fallbacks_total",
			Help:      "Searches that fell back to an empty facet set",
		},
		[]string{"reason"}, // "unavailable" / "malformed"
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers pipeline metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(SearchDuration)
	prometheus.MustRegister(ProbesTotal)
	prometheus.MustRegister(ProbeDuration)
	prometheus.MustRegister(DecomposeRequestsTotal)
	prometheus.MustRegister(DecomposeRequestDuration)
	prometheus.MustRegister(DecomposeFallbacksTotal)
	searchMetricsRegistered = true
}
