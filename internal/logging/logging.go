// Package logging wraps slog with the fields every sawshark log line carries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Format selects the slog handler.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown log format %q (want text or json)", s)
	}
}

// Logger wraps slog.Logger with run-level context.
type Logger struct {
	*slog.Logger
	runID string
}

// New returns a Logger writing to w. Every record carries program and run_id.
func New(w io.Writer, format Format, level slog.Level) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if format == FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	id := uuid.NewString()
	return &Logger{
		Logger: slog.New(h).With("program", "sawshark", "run_id", id),
		runID:  id,
	}
}

// Noop returns a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(1000)}))}
}

// RunID returns the identifier attached to every line.
func (l *Logger) RunID() string { return l.runID }

// LogSummary logs the end-of-run counts. written is what the sink
// accepted, which equals records on a clean run.
func (l *Logger) LogSummary(records, written, annotated int, byLabel map[string]int, elapsed time.Duration) {
	args := []any{"records", records, "written", written, "annotated", annotated, "elapsed", elapsed.Round(time.Millisecond)}
	for label, n := range byLabel {
		args = append(args, slog.Int("label."+label, n))
	}
	l.Info("annotation complete", args...)
}
