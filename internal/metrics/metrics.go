package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AnalysesTotal tracks completed analyses per resulting risk level
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osint_analyses_total",
			Help: "Total number of completed wallet analyses",
		},
		[]string{"risk_level"},
	)

	// AnalysisDuration tracks end-to-end analysis latency
	AnalysisDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "osint_analysis_duration_seconds",
			Help:    "Wallet analysis duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// UpstreamRequests tracks block-explorer calls per action and outcome
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "osint_upstream_requests_total",
			Help: "Total number of block-explorer API requests",
		},
		[]string{"action", "outcome"},
	)

	// BlacklistFallbacks counts analyses that fell back to the embedded list
	BlacklistFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "osint_blacklist_fallbacks_total",
			Help: "Total number of blacklist feed failures served from the embedded list",
		},
	)
)
