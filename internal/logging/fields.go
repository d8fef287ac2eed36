package logging

import (
	"context"
	"log/slog"
)

// Attribute constructors, re-exported so callers need a single import.
var (
	String   = slog.String
	Int      = slog.Int
	Int64    = slog.Int64
	Bool     = slog.Bool
	Duration = slog.Duration
)

// Error wraps err under the "error" key. A nil error renders as "none".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "none")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that drops every record.
func NewNop() *slog.Logger {
	return slog.New(discard{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields a
// tagged no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

// warnDefaults fills the warning fields a caller did not set.
var warnDefaults = []slog.Attr{
	slog.String(FieldErrorHint, "see the daily log file"),
	slog.String(FieldImpact, "run continues"),
}

// WarnWithContext logs a warning that always carries event_type, error_hint
// and impact. Values in attrs take precedence over the defaults.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	set := make(map[string]bool, len(attrs))
	args := make([]any, 0, len(attrs)+3)
	for _, a := range attrs {
		set[a.Key] = true
		args = append(args, a)
	}
	if !set[FieldEventType] {
		args = append(args, slog.String(FieldEventType, eventType))
	}
	for _, d := range warnDefaults {
		if !set[d.Key] {
			args = append(args, d)
		}
	}
	logger.Warn(msg, args...)
}

type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }
