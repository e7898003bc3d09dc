package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Price calculations by outcome (ok or error kind)
	PricingCalculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_calculations_total",
			Help: "Count of ideal price calculations by outcome.",
		},
		[]string{"outcome"},
	)

	// Which experiment arm served the row for a successful calculation
	PricingSourceSelectedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pricing_source_selected_total",
			Help: "Count of dataset source selections by source label.",
		},
		[]string{"source"},
	)

	PricingCalculationDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "pricing_calculation_duration_seconds",
		Help:    "Latency of ideal price calculations, dataset loading included",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		PricingCalculationsTotal,
		PricingSourceSelectedTotal,
		PricingCalculationDuration,
		DatasetCacheRequestsTotal,
		DatasetLoadDuration,
	)
}
