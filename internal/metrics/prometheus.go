package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/microbench/internal/harness"
)

// Recorder collects benchmark measurements into a private Prometheus
// registry that can be exported in the node_exporter textfile format.
type Recorder struct {
	registry *prometheus.Registry
	seconds  *prometheus.GaugeVec
	runs     *prometheus.CounterVec
	failures *prometheus.CounterVec
	heap     prometheus.Gauge
	gcCycles prometheus.Gauge
	memory   *MemoryCollector
}

var _ harness.Recorder = (*Recorder)(nil)

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		seconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "microbench",
			Name:      "workload_seconds",
			Help:      "Elapsed time of the most recent invocation of a workload.",
		}, []string{"workload", "clock"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "microbench",
			Name:      "workload_runs_total",
			Help:      "Number of timed invocations per workload.",
		}, []string{"workload"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "microbench",
			Name:      "workload_verification_failures_total",
			Help:      "Number of invocations whose result failed verification.",
		}, []string{"workload"}),
		heap: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "microbench",
			Name:      "heap_alloc_bytes",
			Help:      "Heap bytes in use after the most recent invocation.",
		}),
		gcCycles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "microbench",
			Name:      "gc_cycles",
			Help:      "Completed GC cycles after the most recent invocation.",
		}),
		memory: NewMemoryCollector(),
	}
	r.registry.MustRegister(r.seconds, r.runs, r.failures, r.heap, r.gcCycles)
	return r
}

// Observe records m.
func (r *Recorder) Observe(m harness.Measurement) {
	r.seconds.WithLabelValues(m.Label, m.Clock).Set(m.Seconds())
	r.runs.WithLabelValues(m.Label).Inc()
	if m.Err != nil {
		r.failures.WithLabelValues(m.Label).Inc()
	}
	snap := r.memory.Snapshot()
	r.heap.Set(float64(snap.HeapAlloc))
	r.gcCycles.Set(float64(snap.NumGC))
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.registry }

// WriteTextfile writes all metrics to path in the Prometheus text format.
// The file is written atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
