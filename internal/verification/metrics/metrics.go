package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Inspection outcomes by result and failure reason
	InspectionOutcome *prometheus.CounterVec

	// Single inspection latency
	InspectLatency prometheus.Histogram

	// Number of IDs per batch request
	BatchSize prometheus.Histogram
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		InspectionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "saudiid_verification_inspections_total",
			Help: "Total ID inspections by result and failure reason",
		}, []string{"result", "reason"}), // result: "valid"/"invalid"; reason: parse kind or "none"

		InspectLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "saudiid_verification_inspect_duration_seconds",
			Help:    "Duration of a single ID inspection",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "saudiid_verification_batch_size",
			Help:    "Number of IDs per batch inspection request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),
	}
}

// IncrementOutcome records one inspection outcome.
func (m *Metrics) IncrementOutcome(result, reason string) {
	if m != nil {
		m.InspectionOutcome.WithLabelValues(result, reason).Inc()
	}
}

// ObserveInspectLatency records the duration of a single inspection.
func (m *Metrics) ObserveInspectLatency(d time.Duration) {
	if m != nil {
		m.InspectLatency.Observe(d.Seconds())
	}
}

// ObserveBatchSize records the size of a batch inspection request.
func (m *Metrics) ObserveBatchSize(n int) {
	if m != nil {
		m.BatchSize.Observe(float64(n))
	}
}
