package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusRecorder reports generation metrics using Prometheus primitives.
type PrometheusRecorder struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	durations   *prometheus.HistogramVec
	upstream    *prometheus.HistogramVec
}

func NewPrometheusRecorder(registry *prometheus.Registry) (*PrometheusRecorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &PrometheusRecorder{
		registry: registry,
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "pumpai_generations_total",
			Help: "Total number of website generations by schema variant and outcome",
		}, []string{"variant", "status"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pumpai_generation_duration_seconds",
			Help:    "End-to-end generation latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"variant"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pumpai_upstream_request_duration_seconds",
			Help:    "Chat completion call latency in seconds",
			Buckets: []float64{0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		}, []string{"status"}),
	}

	for _, collector := range []prometheus.Collector{r.generations, r.durations, r.upstream} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveGeneration(variant string, status string, duration time.Duration) {
	r.generations.WithLabelValues(variant, status).Inc()
	r.durations.WithLabelValues(variant).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveUpstream(status string, duration time.Duration) {
	r.upstream.WithLabelValues(status).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
