package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	Verifications       *prometheus.CounterVec
	VerificationLatency prometheus.Histogram
	DocumentsInserted   prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Verifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "docverify",
			Name:      "verifications_total",
			Help:      "Verification attempts by source and outcome",
		}, []string{"source", "outcome"}),
		VerificationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "docverify",
			Name:      "verification_duration_seconds",
			Help:      "Time from request to resolved verification result",
			Buckets:   []float64{0.01, 0.1, 0.5, 1, 1.5, 2, 5},
		}),
		DocumentsInserted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "docverify",
			Name:      "documents_inserted_total",
			Help:      "Documents added or replaced through the insert operation",
		}),
	}
}

func (m *Metrics) ObserveVerification(source, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.Verifications.WithLabelValues(source, outcome).Inc()
	m.VerificationLatency.Observe(took.Seconds())
}

func (m *Metrics) IncrementDocumentsInserted() {
	if m == nil {
		return
	}
	m.DocumentsInserted.Inc()
}
