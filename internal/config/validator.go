package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docschema/internal/logfields"
	"git.home.luguber.info/inful/docschema/internal/metrics"
)

// Validator runs the two-pass sweep of a schema over a raw configuration.
// A Validator is stateless apart from its collaborators and may be shared;
// each call to Validate gets its own Run.
type Validator struct {
	schema   *Schema
	logger   *slog.Logger
	recorder metrics.Recorder
}

// NewValidator constructs a validator for the schema. logger and recorder
// may be nil; slog.Default and a noop recorder are substituted.
func NewValidator(schema *Schema, logger *slog.Logger, recorder metrics.Recorder) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Validator{schema: schema, logger: logger, recorder: recorder}
}

// Validate produces a fully populated Config and the warnings gathered along
// the way, or a single *ValidationError naming the offending option. Pass 1
// checks each option's own value independently; Pass 2 runs post-validation
// in schema order so later steps can read earlier results. Both passes fail
// fast: the first error aborts the run and no partial output is returned.
func (v *Validator) Validate(rc RawConfig) (*Config, []Warning, error) {
	start := time.Now()
	log := v.logger.With(logfields.RunID(uuid.NewString()))
	log.Debug("starting validation", logfields.Layers(len(rc.Layers)))

	cfg := newConfig(v.schema, rc.Layers)
	run := &Run{cfg: cfg}

	warnUnknownKeys(run, v.schema, rc.Values)

	// Pass 1: per-option checks, order-insensitive.
	for _, e := range v.schema.entries {
		value, err := v.validateOne(run, e, rc.Values[e.Key])
		if err != nil {
			return nil, nil, v.fail(log, start, e.Key, err)
		}
		cfg.Set(e.Key, value)
	}

	// Pass 2: cross-field steps, in declaration order.
	for _, e := range v.schema.entries {
		if err := e.Option.PostValidate(run, e.Key); err != nil {
			return nil, nil, v.fail(log, start, e.Key, err)
		}
	}

	outcome := metrics.OutcomeValid
	if len(run.warnings) > 0 {
		outcome = metrics.OutcomeWarning
	}
	v.recorder.IncValidationOutcome(outcome)
	v.recorder.ObserveValidationDuration(time.Since(start))
	log.Debug("validation complete",
		logfields.Warnings(len(run.warnings)),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return cfg, run.warnings, nil
}

// validateOne applies the shared default/required policy before delegating
// to the option's own check. A nil raw value counts as absent.
func (v *Validator) validateOne(run *Run, e Entry, raw any) (any, error) {
	if raw == nil {
		if def, ok := e.Option.Default(); ok {
			raw = def
		} else if e.Option.Required() {
			return nil, newValidationError("required configuration not provided")
		} else {
			// Optional, no default: resolve to explicit absence and skip
			// the kind-specific check. Pass 2 must tolerate nil here.
			return nil, nil
		}
	}
	return e.Option.Check(run, raw)
}

// fail tags the error with the offending option, records metrics, and logs.
func (v *Validator) fail(log *slog.Logger, start time.Time, key string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		if ve.Option == "" {
			ve.Option = key
		}
	} else {
		ve = &ValidationError{Option: key, Message: err.Error()}
		err = ve
	}
	v.recorder.IncOptionFailure(ve.Option)
	v.recorder.IncValidationOutcome(metrics.OutcomeInvalid)
	v.recorder.ObserveValidationDuration(time.Since(start))
	log.Debug("validation failed", logfields.Option(ve.Option), logfields.Error(err))
	return err
}

// warnUnknownKeys records a warning per raw key the schema does not declare.
// Unknown keys are carried as warnings rather than errors so configs written
// for newer tool versions degrade gracefully.
func warnUnknownKeys(run *Run, s *Schema, values map[string]any) {
	var unknown []string
	for k := range values {
		if _, ok := s.index[k]; !ok {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	for _, k := range unknown {
		run.Warn(k, fmt.Sprintf("unrecognised configuration key %q ignored", k))
	}
}
