package greet

import (
	"log/slog"

	"github.com/randalmurphal/greetkit/pkg/greet/observability"
)

// settings holds configuration collected before Greeter construction.
type settings struct {
	id              string
	defaultGreeting string
	caseSensitive   bool
	templateText    string
	logger          *slog.Logger
	metrics         observability.MetricsRecorder
	spans           observability.SpanManager
}

// defaultSettings returns the default Greeter configuration.
func defaultSettings() settings {
	return settings{
		defaultGreeting: DefaultGreeting,
		caseSensitive:   true,
		templateText:    defaultTemplateText,
		metrics:         observability.NoopMetrics{},
		spans:           observability.NoopSpanManager{},
	}
}

// Option configures a Greeter at construction time.
type Option func(*settings)

// WithDefaultGreeting sets the greeting word used when Greet is called
// without one. The value is trimmed; it must be non-empty afterwards.
// Default: DefaultGreeting.
func WithDefaultGreeting(greeting string) Option {
	return func(s *settings) {
		s.defaultGreeting = greeting
	}
}

// WithCaseSensitive controls name casing. When disabled, names are
// title-cased before formatting ("bob" becomes "Bob").
// Default: true (names keep their original casing).
func WithCaseSensitive(v bool) Option {
	return func(s *settings) {
		s.caseSensitive = v
	}
}

// WithTemplate sets a custom message template. It may reference
// ${greeting} and ${name}; anything else fails NewGreeter with a
// *TemplateError. Default: "${greeting}, ${name}!".
//
// Example:
//
//	g, err := greet.NewGreeter(greet.WithTemplate("${greeting}! ${name}, welcome."))
func WithTemplate(text string) Option {
	return func(s *settings) {
		s.templateText = text
	}
}

// WithID sets the greeter's instance identifier, which appears in logs.
// Default: an auto-generated "greeter-" prefixed ID.
func WithID(id string) Option {
	return func(s *settings) {
		s.id = id
	}
}

// WithLogger sets the logger for this greeter's log lines.
// Default: the package logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics recorder for this greeter.
// Default: observability.NoopMetrics.
func WithMetrics(recorder observability.MetricsRecorder) Option {
	return func(s *settings) {
		if recorder != nil {
			s.metrics = recorder
		}
	}
}

// WithSpans sets the span manager for this greeter.
// Default: observability.NoopSpanManager.
func WithSpans(manager observability.SpanManager) Option {
	return func(s *settings) {
		if manager != nil {
			s.spans = manager
		}
	}
}
