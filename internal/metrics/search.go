package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search and LLM Prometheus metrics.
var (
	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cerebro",
			Name:      "searches_total",
			Help:      "Total number of search requests",
		},
		[]string{"outcome"}, // "answered" / "unanswered"
	)

	RankingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cerebro",
			Name:      "ranking_duration_seconds",
			Help:      "Hybrid ranking duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "cerebro",
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 10},
		},
	)

	LLMRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cerebro",
			Name:      "llm_requests_total",
			Help:      "Total number of LLM answer requests",
		},
		[]string{"model", "status"},
	)

	LLMRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cerebro",
			Name:      "llm_request_duration_seconds",
			Help:      "LLM request duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"model"},
	)

	LLMTokensTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cerebro",
			Name:      "llm_tokens_total",
			Help:      "Total LLM tokens consumed",
		},
		[]string{"model"},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search and LLM metrics. Must be called
// once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchesTotal)
	prometheus.MustRegister(RankingDuration)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(LLMRequestsTotal)
	prometheus.MustRegister(LLMRequestDuration)
	prometheus.MustRegister(LLMTokensTotal)
	searchMetricsRegistered = true
}
