// Package observability provides logging, metrics, and tracing helpers
// for greetkit.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"fmt"
	"log/slog"
)

// NewLogger returns the process logger tagged with a component name.
// Every log line carries a "component" field, so downstream aggregation
// can tell library components apart.
func NewLogger(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// LogGreeting logs that a greeting was produced for a recipient.
func LogGreeting(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Info("greeting generated",
		slog.String("name", name),
	)
}

// LogBatchStart logs the size of a batch before processing.
func LogBatchStart(logger *slog.Logger, count int) {
	if logger == nil {
		return
	}
	logger.Info("generating greetings",
		slog.Int("count", count),
	)
}

// LogSkippedName logs a name skipped by tolerant batch formatting.
func LogSkippedName(logger *slog.Logger, name string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("skipping invalid name",
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

// LogSkippedValue logs a dynamic value skipped by tolerant batch
// formatting. The value is rendered with %v since it may not be text.
func LogSkippedValue(logger *slog.Logger, value any, err error) {
	if logger == nil {
		return
	}
	logger.Warn("skipping invalid name",
		slog.String("value", fmt.Sprintf("%v", value)),
		slog.String("error", err.Error()),
	)
}

// LogBatchSummary logs produced and skipped counts after a tolerant
// batch completes.
func LogBatchSummary(logger *slog.Logger, produced, skipped int) {
	if logger == nil {
		return
	}
	logger.Info("batch complete",
		slog.Int("produced", produced),
		slog.Int("skipped", skipped),
	)
}

// LogGreeterInit logs greeter construction.
func LogGreeterInit(logger *slog.Logger, greeterID, defaultGreeting string) {
	if logger == nil {
		return
	}
	logger.Info("greeter initialized",
		slog.String("greeter_id", greeterID),
		slog.String("default_greeting", defaultGreeting),
	)
}

// LogHistoryCleared logs a history clear with the pre-clear count.
func LogHistoryCleared(logger *slog.Logger, greeterID string, count int) {
	if logger == nil {
		return
	}
	logger.Info("greeting history cleared",
		slog.String("greeter_id", greeterID),
		slog.Int("count", count),
	)
}
