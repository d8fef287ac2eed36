package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"topchart/internal/config"
)

const (
	logFilePrefix = "topchart-"
	logFileSuffix = ".log"
)

// LogFilePath returns the daily log file inside dir for the given day.
func LogFilePath(dir string, day time.Time) string {
	return filepath.Join(dir, logFilePrefix+day.Format("20060102")+logFileSuffix)
}

// NewFromConfig creates the CLI logger: the configured format on stderr and,
// when a log directory is set, a JSON copy of every record at debug level in
// the day's log file. Files older than logging.retention_days are pruned.
// levelOverride replaces the configured level when non-empty. A nil cfg
// yields a console logger on stderr.
func NewFromConfig(cfg *config.Config, levelOverride string) (*slog.Logger, error) {
	var settings config.Logging
	var logDir string
	if cfg != nil {
		settings = cfg.Logging
		logDir = strings.TrimSpace(cfg.Paths.LogDir)
	}
	if strings.TrimSpace(levelOverride) != "" {
		settings.Level = levelOverride
	}

	console, err := newFormatHandler(settings.Format, os.Stderr, parseLevel(settings.Level))
	if err != nil {
		return nil, err
	}
	if logDir == "" {
		return slog.New(console), nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure log directory: %w", err)
	}
	logPath := LogFilePath(logDir, time.Now())
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", logPath, err)
	}
	logger := slog.New(newTee(console, newJSONHandler(file, slog.LevelDebug)))
	PruneLogs(NewComponentLogger(logger, "logging"), logDir, settings.RetentionDays, logPath)
	return logger, nil
}

func newFormatHandler(format string, w io.Writer, level slog.Leveler) (slog.Handler, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console":
		return newConsoleHandler(w, level), nil
	case "json":
		return newJSONHandler(w, level), nil
	}
	return nil, fmt.Errorf("log format: unsupported value %q", format)
}

// parseLevel maps a configured level name to a slog level; unknown names mean info.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
