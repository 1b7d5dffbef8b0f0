package metrics

import "time"

// OutcomeLabel enumerates validation run outcomes for counters.
type OutcomeLabel string

const (
	OutcomeValid   OutcomeLabel = "valid"
	OutcomeWarning OutcomeLabel = "warning"
	OutcomeInvalid OutcomeLabel = "invalid"
)

// Recorder defines observability hooks for validation runs. Implementations
// may forward to Prometheus, OpenTelemetry, etc. All methods must be safe on
// the NoopRecorder so injection stays optional.
type Recorder interface {
	ObserveValidationDuration(d time.Duration)
	IncValidationOutcome(outcome OutcomeLabel)
	IncOptionFailure(option string)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveValidationDuration(time.Duration) {}
func (NoopRecorder) IncValidationOutcome(OutcomeLabel)       {}
func (NoopRecorder) IncOptionFailure(string)                 {}
