package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records greetkit metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordGreeting records one greeting attempt with its duration and
	// error status.
	RecordGreeting(ctx context.Context, greeting string, duration time.Duration, err error)

	// RecordBatch records the outcome of a tolerant batch.
	RecordBatch(ctx context.Context, produced, skipped int)

	// RecordHistoryClear records a history clear with the pre-clear count.
	RecordHistoryClear(ctx context.Context, count int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	greetings       metric.Int64Counter
	greetingLatency metric.Float64Histogram
	greetingErrors  metric.Int64Counter
	batchProduced   metric.Int64Counter
	batchSkipped    metric.Int64Counter
	historyCleared  metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("greetkit")

	greetings, err := meter.Int64Counter("greetkit.greetings",
		metric.WithDescription("Number of greeting attempts"),
	)
	if err != nil {
		return nil, err
	}

	greetingLatency, err := meter.Float64Histogram("greetkit.greeting.latency_ms",
		metric.WithDescription("Greeting formatting latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	greetingErrors, err := meter.Int64Counter("greetkit.greeting.errors",
		metric.WithDescription("Number of failed greeting attempts"),
	)
	if err != nil {
		return nil, err
	}

	batchProduced, err := meter.Int64Counter("greetkit.batch.produced",
		metric.WithDescription("Number of messages produced by tolerant batches"),
	)
	if err != nil {
		return nil, err
	}

	batchSkipped, err := meter.Int64Counter("greetkit.batch.skipped",
		metric.WithDescription("Number of names skipped by tolerant batches"),
	)
	if err != nil {
		return nil, err
	}

	historyCleared, err := meter.Int64Counter("greetkit.history.cleared",
		metric.WithDescription("Number of history records discarded by clears"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		greetings:       greetings,
		greetingLatency: greetingLatency,
		greetingErrors:  greetingErrors,
		batchProduced:   batchProduced,
		batchSkipped:    batchSkipped,
		historyCleared:  historyCleared,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordGreeting records one greeting attempt.
func (m *otelMetrics) RecordGreeting(ctx context.Context, greeting string, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("greeting", greeting),
	}

	m.greetings.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.greetingLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))

	if err != nil {
		m.greetingErrors.Add(ctx, 1, metric.WithAttributes(attrs...))
	}
}

// RecordBatch records a tolerant batch outcome.
func (m *otelMetrics) RecordBatch(ctx context.Context, produced, skipped int) {
	m.batchProduced.Add(ctx, int64(produced))
	m.batchSkipped.Add(ctx, int64(skipped))
}

// RecordHistoryClear records a history clear.
func (m *otelMetrics) RecordHistoryClear(ctx context.Context, count int) {
	m.historyCleared.Add(ctx, int64(count))
}
