package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "fibs"

// Operation labels.
const (
	OpLookup   = "lookup"
	OpSequence = "sequence"
	OpLimit    = "limit"
)

// Status labels.
const (
	StatusOK          = "ok"
	StatusCapacity    = "capacity_exceeded"
	StatusInterrupted = "interrupted" // deadline or cancellation
	StatusError       = "error"
)

// Recorder collects counters and histograms for generator work.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	terms      *prometheus.CounterVec
	maxN       *prometheus.GaugeVec
}

// NewRecorder creates a Recorder backed by a fresh registry. The registry also
// exports heap gauges read through mem; a nil mem disables them.
func NewRecorder(mem *MemoryCollector) *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	r := &Recorder{
		registry: reg,
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Generator operations processed, by kind, operation and status.",
		}, []string{"kind", "operation", "status"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Wall-clock duration of generator operations.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, []string{"kind", "operation"}),
		terms: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "terms_emitted_total",
			Help:      "Terms returned to the caller.",
		}, []string{"kind"}),
		maxN: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "capacity_max_n",
			Help:      "Largest index whose term fits in the kind.",
		}, []string{"kind"}),
	}

	if mem != nil {
		factory.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_bytes",
			Help:      "Bytes of allocated heap objects at scrape time.",
		}, func() float64 { return float64(mem.Snapshot().HeapAlloc) })
		reg.MustRegister(collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC),
		))
	}
	return r
}

// Registry exposes the underlying registry, mainly for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Observe records one completed operation.
func (r *Recorder) Observe(kind, operation, status string, d time.Duration) {
	r.operations.WithLabelValues(kind, operation, status).Inc()
	r.duration.WithLabelValues(kind, operation).Observe(d.Seconds())
}

// AddTerms adds n emitted terms for kind.
func (r *Recorder) AddTerms(kind string, n int) {
	if n <= 0 {
		return
	}
	r.terms.WithLabelValues(kind).Add(float64(n))
}

// SetCapacity records the largest representable index of kind.
func (r *Recorder) SetCapacity(kind string, maxN uint64) {
	r.maxN.WithLabelValues(kind).Set(float64(maxN))
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
