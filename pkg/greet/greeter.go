package greet

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/randalmurphal/greetkit/pkg/greet/observability"
)

// Record is one entry of a Greeter's history. The greeting word and name
// are stored alongside the rendered message so statistics never need to
// re-parse formatted strings.
type Record struct {
	// ID uniquely identifies the record within the process.
	ID string
	// Greeting is the greeting word used, verbatim.
	Greeting string
	// Name is the trimmed (and, for case-insensitive greeters,
	// title-cased) recipient name.
	Name string
	// Message is the rendered greeting.
	Message string
	// At is when the greeting was produced.
	At time.Time
}

// Greeter formats greetings with a fixed default greeting word and
// records every message it produces.
//
// Configuration is immutable after NewGreeter. History is the only
// mutable state and grows append-only until ClearHistory.
//
// Greeter is NOT safe for concurrent use. Callers sharing one instance
// across goroutines must serialize access externally.
type Greeter struct {
	id              string
	defaultGreeting string
	caseSensitive   bool
	template        *Template

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager

	history []Record
}

// NewGreeter creates a Greeter from the given options.
//
// Defaults: greeting word DefaultGreeting, case-sensitive names, the
// standard "${greeting}, ${name}!" template, the package logger, and
// no-op metrics and spans.
//
// The default greeting word is trimmed and must be non-empty afterwards;
// otherwise a *ValueError is returned. An invalid template returns a
// *TemplateError.
func NewGreeter(opts ...Option) (*Greeter, error) {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}

	defaultGreeting := strings.TrimSpace(s.defaultGreeting)
	if defaultGreeting == "" {
		return nil, &ValueError{Arg: "default greeting", Reason: "cannot be empty"}
	}

	tmpl, err := ParseTemplate(s.templateText)
	if err != nil {
		return nil, err
	}

	id := s.id
	if id == "" {
		id = fmt.Sprintf("greeter-%s", uuid.New().String()[:8])
	}

	g := &Greeter{
		id:              id,
		defaultGreeting: defaultGreeting,
		caseSensitive:   s.caseSensitive,
		template:        tmpl,
		logger:          s.logger,
		metrics:         s.metrics,
		spans:           s.spans,
	}
	if g.logger == nil {
		g.logger = pkgLogger
	}

	observability.LogGreeterInit(g.logger, g.id, g.defaultGreeting)
	return g, nil
}

// ID returns the greeter's instance identifier.
func (g *Greeter) ID() string {
	return g.id
}

// DefaultGreeting returns the configured default greeting word.
func (g *Greeter) DefaultGreeting() string {
	return g.defaultGreeting
}

// CaseSensitive reports whether names are formatted with their original
// casing.
func (g *Greeter) CaseSensitive() bool {
	return g.caseSensitive
}

// Greet formats a greeting for name using the default greeting word and
// appends it to history.
func (g *Greeter) Greet(ctx context.Context, name string) (string, error) {
	return g.GreetWith(ctx, name, g.defaultGreeting)
}

// GreetWith formats a greeting for name using an explicit greeting word
// and appends it to history.
//
// When case sensitivity is disabled the name is title-cased before
// validation and formatting, so an empty or whitespace-only name fails
// with the same *ValueError either way. Errors do not touch history.
func (g *Greeter) GreetWith(ctx context.Context, name, greeting string) (string, error) {
	ctx, span := g.spans.StartGreetSpan(ctx, g.id)
	start := time.Now()

	if !g.caseSensitive {
		name = titleCase(name)
	}

	msg, trimmed, err := format(g.template, name, greeting)

	g.metrics.RecordGreeting(ctx, greeting, time.Since(start), err)
	g.spans.EndSpanWithError(span, err)
	if err != nil {
		return "", err
	}

	g.history = append(g.history, Record{
		ID:       fmt.Sprintf("msg-%s", uuid.New().String()[:8]),
		Greeting: greeting,
		Name:     trimmed,
		Message:  msg,
		At:       time.Now(),
	})
	observability.LogGreeting(g.logger, trimmed)
	return msg, nil
}

// History returns a copy of the formatted messages, oldest first.
func (g *Greeter) History() []string {
	messages := make([]string, len(g.history))
	for i, rec := range g.history {
		messages[i] = rec.Message
	}
	return messages
}

// Records returns a copy of the structured history, oldest first.
func (g *Greeter) Records() []Record {
	records := make([]Record, len(g.history))
	copy(records, g.history)
	return records
}

// ClearHistory empties the history, leaving configuration untouched.
// Idempotent. Logs the pre-clear count.
func (g *Greeter) ClearHistory(ctx context.Context) {
	n := len(g.history)
	g.history = nil
	observability.LogHistoryCleared(g.logger, g.id, n)
	g.metrics.RecordHistoryClear(ctx, n)
}

// titleCase upper-cases the first letter of every word and lower-cases
// the rest. A word boundary is any non-letter rune, so "bob smith-jones"
// becomes "Bob Smith-Jones". Non-letter runes pass through unchanged.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if inWord {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			inWord = true
		} else {
			inWord = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
