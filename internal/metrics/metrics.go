package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Remote catalog metrics
var (
	// UpstreamRequestsTotal counts catalog requests by endpoint and outcome
	// (success, not_found, canceled, transient).
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamehub",
			Name:      "upstream_requests_total",
			Help:      "Total number of requests sent to the remote catalog.",
		},
		[]string{"endpoint", "outcome"},
	)

	// UpstreamRequestDuration observes catalog request latency by endpoint.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "gamehub",
			Name:      "upstream_request_duration_seconds",
			Help:      "Latency of requests sent to the remote catalog.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)

// Live search metrics
var (
	// SearchQueriesTotal counts debounced search queries by outcome
	// (issued, succeeded, failed, superseded).
	SearchQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "gamehub",
			Name:      "search_queries_total",
			Help:      "Total number of live search queries.",
		},
		[]string{"outcome"},
	)

	// SearchSessionsActive tracks open live search sessions (websocket and terminal).
	SearchSessionsActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "gamehub",
			Name:      "search_sessions_active",
			Help:      "Number of open live search sessions.",
		},
	)
)

// PageRendersTotal counts rendered pages by page name and HTTP status.
var PageRendersTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "gamehub",
		Name:      "page_renders_total",
		Help:      "Total number of rendered pages.",
	},
	[]string{"page", "status"},
)

func init() {
	prometheus.MustRegister(
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
		SearchQueriesTotal,
		SearchSessionsActive,
		PageRendersTotal,
	)
}
