package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Dataset cache lookups by result (hit, miss, error)
	DatasetCacheRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_cache_requests_total",
			Help: "Count of dataset cache lookups by group and result.",
		},
		[]string{"group", "result"},
	)

	DatasetLoadDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dataset_load_duration_seconds",
		Help:    "Latency of loading one dataset group from its backing store",
		Buckets: prometheus.DefBuckets,
	}, []string{"group"})
)
