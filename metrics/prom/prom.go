// Package prom implements nthterm.Metrics on Prometheus counters.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nthterm/nthterm"
)

var _ nthterm.Metrics = (*Metrics)(nil)

// Metrics counts cache lifecycle events under a namespace, labeled by
// sequence name so machines for different sequences can share a registry.
type Metrics struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	expirations prometheus.Counter
}

// New registers the counters with reg (use prometheus.DefaultRegisterer for
// the default registry) and returns the metrics sink for one machine.
func New(namespace, sequence string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	labels := prometheus.Labels{"sequence": sequence}
	return &Metrics{
		hits: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_hits_total",
			Help:        "Evaluations answered from the cache",
			ConstLabels: labels,
		}),
		misses: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_misses_total",
			Help:        "Evaluations that invoked the strategy",
			ConstLabels: labels,
		}),
		evictions: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_evictions_total",
			Help:        "Entries dropped for capacity",
			ConstLabels: labels,
		}),
		expirations: f.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "cache_expirations_total",
			Help:        "Entries dropped for exceeding max age",
			ConstLabels: labels,
		}),
	}
}

func (m *Metrics) Hit()      { m.hits.Inc() }
func (m *Metrics) Miss()     { m.misses.Inc() }
func (m *Metrics) Eviction() { m.evictions.Inc() }
func (m *Metrics) Expire()   { m.expirations.Inc() }
