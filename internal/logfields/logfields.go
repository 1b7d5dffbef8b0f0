package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyOption     = "option"
	KeyPath       = "path"
	KeyTheme      = "theme"
	KeyLayers     = "layers"
	KeyWarnings   = "warnings"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Option(name string) slog.Attr    { return slog.String(KeyOption, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Theme(name string) slog.Attr     { return slog.String(KeyTheme, name) }
func Layers(n int) slog.Attr          { return slog.Int(KeyLayers, n) }
func Warnings(n int) slog.Attr        { return slog.Int(KeyWarnings, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
