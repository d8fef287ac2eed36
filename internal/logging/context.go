package logging

import (
	"context"
	"log/slog"
)

// Standardized structured logging keys.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	FieldSource    = "source"
	FieldStrategy  = "strategy"
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"
)

type runIDKey struct{}

// ContextWithRunID tags ctx with the identifier of the current scrape run.
func ContextWithRunID(ctx context.Context, runID string) context.Context {
	if runID == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

func runIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithContext adds the run ID carried by ctx, if any, to logger.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	if id := runIDFrom(ctx); id != "" {
		return logger.With(slog.String(FieldRunID, id))
	}
	return logger
}
