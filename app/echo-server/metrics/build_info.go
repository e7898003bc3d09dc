package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	BuildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "ideal_price_build_info",
		Help: "Constant 1, labelled with the running version and dataset backend",
	}, []string{"version", "environment", "backend"})

	DatasetCacheEnabled = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ideal_price_dataset_cache_enabled",
		Help: "1 when the redis dataset cache fronts the dataset backend",
	})
)

func Init(version, environment, backend string, cacheEnabled bool) {
	prometheus.MustRegister(BuildInfo, DatasetCacheEnabled)

	BuildInfo.WithLabelValues(version, environment, backend).Set(1)
	if cacheEnabled {
		DatasetCacheEnabled.Set(1)
	}
}
