package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	// invocations counts engine invocations by engine and status
	invocations *prometheus.CounterVec
	// items counts processed items by engine and outcome
	items *prometheus.CounterVec
	// duration tracks invocation latency
	duration *prometheus.HistogramVec
}

// New creates the collectors on a dedicated registry that also carries the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		invocations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_sync_invocations_total",
			Help: "Total engine invocations by engine and status",
		}, []string{"engine", "status"}),
		items: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "catalog_sync_items_total",
			Help: "Total items processed by engine and outcome",
		}, []string{"engine", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "catalog_sync_invocation_seconds",
			Help:    "Engine invocation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 14), // 50ms to ~7min
		}, []string{"engine"}),
	}
}

// ObserveInvocation records one finished invocation.
func (m *Metrics) ObserveInvocation(engine, status string, elapsed time.Duration) {
	m.invocations.WithLabelValues(engine, status).Inc()
	m.duration.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// AddItems adds n items with the given outcome. Non-positive n is ignored.
func (m *Metrics) AddItems(engine, outcome string, n int) {
	if n <= 0 {
		return
	}
	m.items.WithLabelValues(engine, outcome).Add(float64(n))
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns the HTTP handler for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
