// Package metrics exposes Prometheus counters for the shortener.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "clickledger"

// Metrics holds the collectors registered for one process.
type Metrics struct {
	registry      *prometheus.Registry
	operations    *prometheus.CounterVec
	eventsDropped prometheus.Counter
}

// New creates the collectors on a fresh registry, alongside the Go and
// process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Shortener operations by name and outcome.",
		}, []string{"operation", "outcome"}),
		eventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "eventlog_dropped_total",
			Help:      "Events the event log sink failed to store.",
		}),
	}

	registry.MustRegister(
		m.operations,
		m.eventsDropped,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Observe counts one operation outcome.
func (m *Metrics) Observe(operation, outcome string) {
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// EventsDropped is incremented whenever the event log sink rejects an event.
func (m *Metrics) EventsDropped() prometheus.Counter {
	return m.eventsDropped
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
