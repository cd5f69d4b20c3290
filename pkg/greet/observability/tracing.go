package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the greetkit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("greetkit")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartGreetSpan starts a span for one greeting.
	// Returns the context with span and the span itself.
	StartGreetSpan(ctx context.Context, greeterID string) (context.Context, trace.Span)

	// StartBatchSpan starts a span for a batch of greetings.
	StartBatchSpan(ctx context.Context, size int) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartGreetSpan starts a span for one greeting.
func (m *otelSpanManager) StartGreetSpan(ctx context.Context, greeterID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "greetkit.greet",
		trace.WithAttributes(
			attribute.String("greeter.id", greeterID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartBatchSpan starts a span for a batch of greetings.
func (m *otelSpanManager) StartBatchSpan(ctx context.Context, size int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "greetkit.batch",
		trace.WithAttributes(
			attribute.Int("batch.size", size),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
