// Package prometheus implements the application layer's MetricsCollector port
// over a prometheus registry.  The registry is exposed for embedding; this
// package deliberately owns no HTTP surface.
package prometheus

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "crawlvalue"

// Collector registers and updates the platform's metric families.  Metric
// vectors are created lazily on first use, keyed by name and sorted label
// keys, so call sites stay declarative.
type Collector struct {
	registry *prometheus.Registry

	mu         sync.Mutex
	counters   map[string]*prometheus.CounterVec
	gauges     map[string]*prometheus.GaugeVec
	histograms map[string]*prometheus.HistogramVec
}

// NewCollector constructs a Collector with its own registry.
func NewCollector() *Collector {
	return &Collector{
		registry:   prometheus.NewRegistry(),
		counters:   make(map[string]*prometheus.CounterVec),
		gauges:     make(map[string]*prometheus.GaugeVec),
		histograms: make(map[string]*prometheus.HistogramVec),
	}
}

// Registry exposes the underlying registry so the embedding process can
// attach its own exposition endpoint.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// IncCounter increments the counter identified by name, partitioned by labels.
func (c *Collector) IncCounter(name string, labels map[string]string) {
	c.AddCounter(name, 1, labels)
}

// AddCounter adds value to the counter identified by name.
func (c *Collector) AddCounter(name string, value float64, labels map[string]string) {
	keys, values := splitLabels(labels)
	c.mu.Lock()
	vec, ok := c.counters[name]
	if !ok {
		vec = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
		}, keys)
		c.registry.MustRegister(vec)
		c.counters[name] = vec
	}
	c.mu.Unlock()
	vec.WithLabelValues(values...).Add(value)
}

// SetGauge sets the gauge identified by name.
func (c *Collector) SetGauge(name string, value float64, labels map[string]string) {
	keys, values := splitLabels(labels)
	c.mu.Lock()
	vec, ok := c.gauges[name]
	if !ok {
		vec = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
		}, keys)
		c.registry.MustRegister(vec)
		c.gauges[name] = vec
	}
	c.mu.Unlock()
	vec.WithLabelValues(values...).Set(value)
}

// ObserveHistogram records an observation on the histogram identified by name.
func (c *Collector) ObserveHistogram(name string, value float64, labels map[string]string) {
	keys, values := splitLabels(labels)
	c.mu.Lock()
	vec, ok := c.histograms[name]
	if !ok {
		vec = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Buckets:   prometheus.DefBuckets,
		}, keys)
		c.registry.MustRegister(vec)
		c.histograms[name] = vec
	}
	c.mu.Unlock()
	vec.WithLabelValues(values...).Observe(value)
}

// splitLabels returns the label keys sorted, with values in matching order,
// so a metric's label schema is stable regardless of map iteration order.
func splitLabels(labels map[string]string) ([]string, []string) {
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = labels[k]
	}
	return keys, values
}

//Personal.AI order the ending
