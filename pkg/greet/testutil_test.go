package greet

import (
	"context"
	"log/slog"
	"testing"
)

// Test logging helpers shared across test files.

// logEntry is one captured log record.
type logEntry struct {
	level slog.Level
	msg   string
	attrs map[string]any
}

// captured collects log entries for assertions.
type captured struct {
	entries []logEntry
}

// byLevel returns the captured entries at the given level.
func (c *captured) byLevel(level slog.Level) []logEntry {
	var out []logEntry
	for _, e := range c.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}

// find returns the first entry with the given message, or nil.
func (c *captured) find(msg string) *logEntry {
	for i := range c.entries {
		if c.entries[i].msg == msg {
			return &c.entries[i]
		}
	}
	return nil
}

// captureHandler is a slog.Handler that appends records to a captured.
type captureHandler struct {
	log  *captured
	base []slog.Attr
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]any)
	for _, a := range h.base {
		attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})
	h.log.entries = append(h.log.entries, logEntry{
		level: r.Level,
		msg:   r.Message,
		attrs: attrs,
	})
	return nil
}

func (h *captureHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	base := make([]slog.Attr, 0, len(h.base)+len(attrs))
	base = append(base, h.base...)
	base = append(base, attrs...)
	return &captureHandler{log: h.log, base: base}
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

// newCaptureLogger returns a logger that records into the returned
// captured.
func newCaptureLogger() (*slog.Logger, *captured) {
	c := &captured{}
	return slog.New(&captureHandler{log: c}), c
}

// capturePackageLogs swaps the package logger for a capturing one and
// restores the default when the test finishes.
func capturePackageLogs(t *testing.T) *captured {
	t.Helper()
	logger, c := newCaptureLogger()
	SetLogger(logger)
	t.Cleanup(func() { SetLogger(nil) })
	return c
}
