package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_http_requests_total",
			Help: "HTTP requests by route, method and status",
		},
		[]string{"route", "method", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinemate_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_cache_hits_total",
			Help: "Cache hits by key family",
		},
		[]string{"family"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_cache_misses_total",
			Help: "Cache misses by key family",
		},
		[]string{"family"},
	)

	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_cache_errors_total",
			Help: "Cache failures absorbed as misses, by operation",
		},
		[]string{"operation"},
	)

	GraphSyncFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_graph_sync_failures_total",
			Help: "Write-through updates the graph store rejected, by entity",
		},
		[]string{"entity"},
	)

	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinemate_circuit_breaker_state",
			Help: "Circuit breaker state by name",
		},
		[]string{"name"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinemate_store_errors_total",
			Help: "Failed store calls surfaced to callers, by store",
		},
		[]string{"store"},
	)
)
