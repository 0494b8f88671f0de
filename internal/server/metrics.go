package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the collectors exposed on /metrics.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	optimizations *prometheus.CounterVec
	removals      prometheus.Histogram
}

// NewMetrics registers the server collectors on a fresh registry, along
// with the Go runtime and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reactorcalc",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "reactorcalc",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		optimizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "reactorcalc",
			Name:      "optimizations_total",
			Help:      "Completed layout optimizations by structure, mode and feasibility.",
		}, []string{"structure", "mode", "feasible"}),
		removals: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "reactorcalc",
			Name:      "fission_removals",
			Help:      "Rod segments removed per fission reduction.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
	m.registry.MustRegister(
		m.requests,
		m.latency,
		m.optimizations,
		m.removals,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry exposes the underlying registry for the /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observeOptimization(structure, mode string, feasible bool) {
	f := "false"
	if feasible {
		f = "true"
	}
	m.optimizations.WithLabelValues(structure, mode, f).Inc()
}
