package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "okrsearch",
			Name:      "search_requests_total",
			Help:      "Total number of aggregated searches by outcome",
		},
		[]string{"outcome"}, // "complete" / "partial" / "failed" / "empty"
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "okrsearch",
			Name:      "provider_requests_total",
			Help:      "Total number of entity provider lookups",
		},
		[]string{"kind", "status"}, // status: "ok" / "error" / "timeout"
	)

	ProviderRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "okrsearch",
			Name:      "provider_duration_seconds",
			Help:      "Entity provider lookup duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"kind"},
	)
)

// Search outcome label values.
const (
	OutcomeComplete = "complete"
	OutcomePartial  = "partial"
	OutcomeFailed   = "failed"
	OutcomeEmpty    = "empty"
)

// Provider status label values.
const (
	StatusOK      = "ok"
	StatusError   = "error"
	StatusTimeout = "timeout"
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers Prometheus search metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(ProviderRequestsTotal)
	prometheus.MustRegister(ProviderRequestDuration)
	searchMetricsRegistered = true
}
