package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewServerRegistry returns the registry served on the metrics endpoint. Next
// to the runtime collectors it exposes <namespace>_backend_info{backend} so a
// dashboard can tell which store a process is running against.
func NewServerRegistry(namespace, backend string) *prometheus.Registry {
	registry := prometheus.NewRegistry()

	backendInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "backend_info",
		Help:        "Store backend the server was started with.",
		ConstLabels: prometheus.Labels{"backend": backend},
	})
	backendInfo.Set(1)

	registry.MustRegister(
		backendInfo,
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	return registry
}
