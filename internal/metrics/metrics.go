// Package metrics holds the Prometheus collectors exported by the gadget service.
// Each Metrics value owns its registry so tests can build isolated instances.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gadget"

// Metrics groups the service collectors and the registry they are registered with.
type Metrics struct {
	registry *prometheus.Registry

	Aggregations        *prometheus.CounterVec
	AggregationDuration *prometheus.HistogramVec
	AggregatedBytes     *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
	Requests            *prometheus.CounterVec
}

// New creates a Metrics with all collectors registered, including Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Aggregations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregations_total",
				Help:      "Asset aggregations by category and result.",
			},
			[]string{"category", "result"},
		),
		AggregationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "aggregation_duration_seconds",
				Help:      "Time spent reading and concatenating asset files.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"category"},
		),
		AggregatedBytes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "aggregated_bytes_total",
				Help:      "Bytes produced by asset aggregation, excluding cache hits.",
			},
			[]string{"category"},
		),
		CacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_lookups_total",
				Help:      "Aggregation cache lookups by category and outcome.",
			},
			[]string{"category", "outcome"},
		),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "HTTP requests by method and status code.",
			},
			[]string{"method", "code"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.Aggregations,
		m.AggregationDuration,
		m.AggregatedBytes,
		m.CacheLookups,
		m.Requests,
	)

	return m
}

// Registry exposes the underlying registry for gathering in tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{})
}

// Instrument wraps next with a request counter labelled by method and status code.
func (m *Metrics) Instrument(next http.Handler) http.Handler {
	return promhttp.InstrumentHandlerCounter(m.Requests, next)
}
