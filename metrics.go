package nthterm

// Metrics receives cache lifecycle events from a machine. A Prometheus
// implementation lives in metrics/prom.
type Metrics interface {
	// Hit is called when Calculate answers from the cache.
	Hit()
	// Miss is called when Calculate has to invoke the strategy.
	Miss()
	// Eviction is called when an entry is dropped for capacity.
	Eviction()
	// Expire is called when an entry is dropped for exceeding max age.
	Expire()
}

// NopMetrics ignores all events; the default when Options.Metrics is nil.
type NopMetrics struct{}

func (NopMetrics) Hit()      {}
func (NopMetrics) Miss()     {}
func (NopMetrics) Eviction() {}
func (NopMetrics) Expire()   {}
