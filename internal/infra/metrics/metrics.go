// Package metrics defines the Prometheus collectors exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "foodiecircle"

//nolint:gochecknoglobals
var (
	// HTTPRequestsTotal counts HTTP requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP latency by method and route
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// SearchRequestsTotal counts searches by category and outcome (ok, error)
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of searches",
		},
		[]string{"category", "outcome"},
	)

	// SearchDishesScanned observes how many dishes a restaurant search read before aggregation
	SearchDishesScanned = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_dishes_scanned",
			Help:      "Dishes read per restaurant search",
			Buckets:   []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
		},
	)

	// SearchResults observes how many results a search returned
	SearchResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Results returned per search",
			Buckets:   []float64{0, 1, 5, 10, 20, 50},
		},
		[]string{"category"},
	)

	// FollowStateDegradedTotal counts searches answered without follow state
	FollowStateDegradedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "follow_state_degraded_total",
			Help:      "Searches whose subscription refresh failed",
		},
	)

	// FollowTogglesTotal counts toggles by target kind and result (followed, unfollowed, error)
	FollowTogglesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "follow_toggles_total",
			Help:      "Total number of follow toggles",
		},
		[]string{"kind", "result"},
	)

	// StoreErrorsTotal counts record store failures surfaced to callers
	StoreErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Record store failures by operation and collection",
		},
		[]string{"op", "collection"},
	)

	// CircuitBreakerState reports breaker state (0 closed, 1 half-open, 2 open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state",
		},
		[]string{"name"},
	)

	// CircuitBreakerRequests counts calls through a breaker by result (success, failure, rejected)
	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "Calls through a circuit breaker",
		},
		[]string{"name", "result"},
	)

	// PushNotificationsTotal counts follower pushes by result (sent, failed, error)
	PushNotificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_notifications_total",
			Help:      "Follower push notifications",
		},
		[]string{"result"},
	)

	// StoreQueryDuration tracks record store statement latency by operation (select, insert, delete, other)
	StoreQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "store_query_duration_seconds",
			Help:      "Record store statement latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"operation"},
	)

	// StoreSlowQueriesTotal counts statements slower than store.slowQueryThreshold
	StoreSlowQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_slow_queries_total",
			Help:      "Record store statements over the slow query threshold",
		},
	)

	// StorePoolConnections reports connection pool usage by state (open, in_use, idle)
	StorePoolConnections = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_pool_connections",
			Help:      "Record store connection pool usage",
		},
		[]string{"state"},
	)

	// StorePoolWaitSeconds accumulates time callers spent waiting for a pooled connection
	StorePoolWaitSeconds = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_pool_wait_seconds_total",
			Help:      "Time spent waiting for a record store connection",
		},
	)
)
