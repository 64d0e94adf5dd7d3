package health

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "masterpos",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	HttpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "masterpos",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	CatalogRefreshes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "masterpos",
			Subsystem: "catalog",
			Name:      "refreshes_total",
			Help:      "Full catalog refetches by outcome",
		},
		[]string{"outcome"},
	)
)
