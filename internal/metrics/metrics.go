package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Record kinds used as label values
const (
	KindSeats     = "seats"
	KindSchedules = "schedules"
)

// Submission outcomes used as label values
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	RecordsGenerated   *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	GenerationTime     *prometheus.HistogramVec
}

// NewMetrics creates the metrics and registers them with reg
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RecordsGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_generated_total",
			Help:      "The total number of generated seat and schedule records",
		}, []string{"kind"}),
		Submissions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_submissions_total",
			Help:      "The total number of bulk submissions by outcome",
		}, []string{"kind", "outcome"}),
		ValidationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "The total number of rejected generation configurations",
		}, []string{"kind"}),
		GenerationTime: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Time taken to generate a batch of records",
			Buckets:   prometheus.DefBuckets,
		}, []string{"kind"}),
	}
}
