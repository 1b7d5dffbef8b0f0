package metrics

import (
	"sync"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	once               sync.Once
	validationDuration prom.Histogram
	validationOutcome  *prom.CounterVec
	optionFailures     *prom.CounterVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics (idempotent).
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{}
	pr.once.Do(func() {
		pr.validationDuration = prom.NewHistogram(prom.HistogramOpts{
			Namespace: "docschema",
			Name:      "validation_duration_seconds",
			Help:      "Duration of full configuration validation runs",
			Buckets:   prom.DefBuckets,
		})
		pr.validationOutcome = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docschema",
			Name:      "validation_outcomes_total",
			Help:      "Validation run outcomes by final status",
		}, []string{"outcome"})
		pr.optionFailures = prom.NewCounterVec(prom.CounterOpts{
			Namespace: "docschema",
			Name:      "option_failures_total",
			Help:      "Validation failures by offending option",
		}, []string{"option"})
		reg.MustRegister(pr.validationDuration, pr.validationOutcome, pr.optionFailures)
	})
	return pr
}

func (pr *PrometheusRecorder) ObserveValidationDuration(d time.Duration) {
	pr.validationDuration.Observe(d.Seconds())
}

func (pr *PrometheusRecorder) IncValidationOutcome(outcome OutcomeLabel) {
	pr.validationOutcome.WithLabelValues(string(outcome)).Inc()
}

func (pr *PrometheusRecorder) IncOptionFailure(option string) {
	pr.optionFailures.WithLabelValues(option).Inc()
}
