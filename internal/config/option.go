package config

import (
	"fmt"
)

// ValidationError is the terminal failure signal for a validation run. The
// validator fills in Option when the failing option is known so callers get
// a message naming the offending key and the violated contract.
type ValidationError struct {
	Option  string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Option == "" {
		return e.Message
	}
	return fmt.Sprintf("config value %q: %s", e.Option, e.Message)
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// Warning is a non-fatal (option, message) pair accumulated during a run.
// Warnings never abort validation.
type Warning struct {
	Option  string
	Message string
}

// Option is one named, typed schema unit. Check performs the single-value
// Pass-1 validation on a non-absent value; PostValidate runs in schema order
// during Pass 2 and may read and write other keys of the shared Config.
// DependsOn names keys whose own PostValidate must already have run; the
// schema asserts declaration order satisfies these at construction time.
type Option interface {
	Default() (any, bool)
	Required() bool
	Check(run *Run, value any) (any, error)
	PostValidate(run *Run, key string) error
	DependsOn() []string
}

// BaseOption carries the default/required policy shared by every option kind
// and provides the no-op Pass-2 behavior. Embed it and override Check (and
// PostValidate where cross-field behavior is needed).
type BaseOption struct {
	DefaultValue any
	IsRequired   bool
}

func (b BaseOption) Default() (any, bool) { return b.DefaultValue, b.DefaultValue != nil }

func (b BaseOption) Required() bool { return b.IsRequired }

// Check passes the value through unchanged. Free-form options (no type
// constraint) can use BaseOption directly.
func (b BaseOption) Check(_ *Run, value any) (any, error) { return value, nil }

func (b BaseOption) PostValidate(_ *Run, _ string) error { return nil }

func (b BaseOption) DependsOn() []string { return nil }

// Run is the per-invocation state threaded through both passes: the config
// being built and the warnings accumulated so far. A Schema is immutable and
// shareable; each concurrent validation gets its own Run.
type Run struct {
	cfg      *Config
	warnings []Warning
}

// Config returns the configuration under construction.
func (r *Run) Config() *Config { return r.cfg }

// Warn records a non-fatal finding against the named option.
func (r *Run) Warn(option, message string) {
	r.warnings = append(r.warnings, Warning{Option: option, Message: message})
}

// Warnings returns the warnings accumulated so far, in order.
func (r *Run) Warnings() []Warning { return r.warnings }
