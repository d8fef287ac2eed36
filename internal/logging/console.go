package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimeLayout = "2006-01-02 15:04:05"

// consoleHandler renders one line per record:
//
//	2006-01-02 15:04:05 INFO component: message run=1a2b3c4d key=value ...
//
// Grouped keys are dotted. A repeated key keeps its first position and its
// last value.
type consoleHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	level  slog.Leveler
	prefix string
	fields []field
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, level slog.Leveler) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := slices.Clone(h.fields)
	record.Attrs(func(a slog.Attr) bool {
		fields = appendFields(fields, h.prefix, a)
		return true
	})

	var component, runID string
	rest := fields[:0]
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		switch f.key {
		case FieldComponent:
			component = plainValue(f.value)
			continue
		case FieldRunID:
			runID = plainValue(f.value)
			continue
		}
		if i, ok := index[f.key]; ok {
			rest[i].value = f.value
			continue
		}
		index[f.key] = len(rest)
		rest = append(rest, f)
	}

	msg := strings.TrimSpace(record.Message)
	if msg == "" {
		msg = "(no message)"
	}

	var b strings.Builder
	b.WriteString(consoleTime(record.Time))
	b.WriteByte(' ')
	b.WriteString(levelLabel(record.Level))
	b.WriteByte(' ')
	if component != "" {
		b.WriteString(component)
		b.WriteString(": ")
	}
	b.WriteString(msg)
	if runID != "" {
		b.WriteString(" run=")
		b.WriteString(shortRunID(runID))
	}
	for _, f := range rest {
		fmt.Fprintf(&b, " %s=%s", f.key, fieldValue(f.value))
	}
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.fields = appendFields(slices.Clone(h.fields), h.prefix, attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// appendFields flattens attrs into dotted keys under prefix. Empty keys are
// dropped except on groups, whose members are inlined.
func appendFields(dst []field, prefix string, attrs ...slog.Attr) []field {
	for _, a := range attrs {
		v := a.Value.Resolve()
		if v.Kind() == slog.KindGroup {
			p := prefix
			if a.Key != "" {
				p += a.Key + "."
			}
			dst = appendFields(dst, p, v.Group()...)
			continue
		}
		if a.Key == "" {
			continue
		}
		dst = append(dst, field{key: prefix + a.Key, value: v})
	}
	return dst
}

// shortRunID keeps the first UUID group, enough to tell runs apart on a console.
func shortRunID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}

func consoleTime(ts time.Time) string {
	if ts.IsZero() {
		ts = time.Now()
	}
	return ts.Local().Format(consoleTimeLayout)
}

// plainValue renders v without quoting.
func plainValue(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return consoleTime(v.Time())
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	}
	return v.String()
}

// fieldValue quotes values that would break key=value parsing.
func fieldValue(v slog.Value) string {
	s := plainValue(v)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}
