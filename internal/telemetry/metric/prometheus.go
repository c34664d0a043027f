package metric

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "akirakey"

// Failure reasons for GenerateFailures.
const (
	ReasonEntropy      = "entropy"
	ReasonEmbeddedNUL  = "embedded_nul"
	ReasonLockedMemory = "locked_memory"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	KeysGenerated    prometheus.Counter
	GenerateFailures *prometheus.CounterVec

	HandlesIssued      prometheus.Counter
	HandlesReleased    prometheus.Counter
	HandlesOutstanding prometheus.Gauge
	NullReleases       prometheus.Counter
}

// NewRegistry creates a registry with every akirakey metric registered,
// plus the Go runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		KeysGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keys_generated_total",
			Help:      "Total number of keys generated.",
		}),
		GenerateFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generate_failures_total",
			Help:      "Total number of failed key generations by reason.",
		}, []string{"reason"}),
		HandlesIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handles_issued_total",
			Help:      "Total number of key handles handed to the host.",
		}),
		HandlesReleased: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "handles_released_total",
			Help:      "Total number of key handles released by the host.",
		}),
		HandlesOutstanding: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "handles_outstanding",
			Help:      "Key handles issued and not yet released.",
		}),
		NullReleases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "null_releases_total",
			Help:      "Total number of release calls made with a null handle.",
		}),
	}

	r.registry.MustRegister(
		r.KeysGenerated,
		r.GenerateFailures,
		r.HandlesIssued,
		r.HandlesReleased,
		r.HandlesOutstanding,
		r.NullReleases,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

var (
	globalOnce     sync.Once
	globalRegistry *Registry
)

// Global returns the process-wide registry.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// Gatherer exposes the underlying registry for export.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the current metric values to path in the Prometheus
// text format, atomically, for the node_exporter textfile collector.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// RecordGenerate counts one generation attempt. A nil err counts a key.
func (r *Registry) RecordGenerate(reason string, err error) {
	if err != nil {
		r.GenerateFailures.WithLabelValues(reason).Inc()
		return
	}
	r.KeysGenerated.Inc()
}

// RecordIssue counts a handle handed to the host.
func (r *Registry) RecordIssue() {
	r.HandlesIssued.Inc()
	r.HandlesOutstanding.Inc()
}

// RecordRelease counts a release call. Null releases do not touch the
// outstanding gauge.
func (r *Registry) RecordRelease(null bool) {
	if null {
		r.NullReleases.Inc()
		return
	}
	r.HandlesReleased.Inc()
	r.HandlesOutstanding.Dec()
}
