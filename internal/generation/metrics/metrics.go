package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the generation module.
type Metrics struct {
	// IDs generated by category
	GeneratedTotal *prometheus.CounterVec

	// Generation failures by kind
	FailuresTotal *prometheus.CounterVec

	// Latency of a full generation request
	GenerateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all generation metrics registered.
func New() *Metrics {
	return &Metrics{
		GeneratedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "saudiid_generation_ids_total",
			Help: "Total IDs generated by category",
		}, []string{"category"}),

		FailuresTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "saudiid_generation_failures_total",
			Help: "Total generation failures by kind",
		}, []string{"kind"}),

		GenerateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "saudiid_generation_duration_seconds",
			Help:    "Duration of a generation request",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementGenerated records successfully generated IDs.
func (m *Metrics) IncrementGenerated(category string, n int) {
	if m != nil {
		m.GeneratedTotal.WithLabelValues(category).Add(float64(n))
	}
}

// IncrementFailure records a generation failure.
func (m *Metrics) IncrementFailure(kind string) {
	if m != nil {
		m.FailuresTotal.WithLabelValues(kind).Inc()
	}
}

// ObserveGenerateLatency records the duration of a generation request.
func (m *Metrics) ObserveGenerateLatency(d time.Duration) {
	if m != nil {
		m.GenerateLatency.Observe(d.Seconds())
	}
}
