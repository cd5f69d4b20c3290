package greet

import (
	"log/slog"
	"strings"

	"github.com/randalmurphal/greetkit/pkg/greet/observability"
)

// DefaultGreeting is the greeting word used when the caller does not
// supply one.
const DefaultGreeting = "Hello"

// Process-wide sinks for package-level functions. Greeter instances carry
// their own via WithLogger and WithMetrics.
var (
	pkgLogger  = observability.NewLogger("greet")
	pkgMetrics observability.MetricsRecorder = observability.NoopMetrics{}
)

// SetLogger replaces the logger used by package-level functions.
// Passing nil restores the default component logger.
//
// Not safe to call concurrently with formatting functions; configure once
// at startup.
func SetLogger(logger *slog.Logger) {
	if logger == nil {
		pkgLogger = observability.NewLogger("greet")
		return
	}
	pkgLogger = logger
}

// SetMetrics replaces the metrics recorder used by package-level batch
// functions. Passing nil restores the no-op recorder.
//
// Not safe to call concurrently with formatting functions; configure once
// at startup.
func SetMetrics(recorder observability.MetricsRecorder) {
	if recorder == nil {
		pkgMetrics = observability.NoopMetrics{}
		return
	}
	pkgMetrics = recorder
}

// Greet formats a greeting for name using DefaultGreeting.
//
// Equivalent to GreetWith(name, DefaultGreeting).
func Greet(name string) (string, error) {
	return GreetWith(name, DefaultGreeting)
}

// GreetWith formats "<greeting>, <name>!" with name trimmed of
// surrounding whitespace. The greeting word is used verbatim.
//
// Returns a *ValueError if name is empty or whitespace-only.
//
// Example:
//
//	msg, err := greet.GreetWith("  Alice  ", "Hi")
//	// msg == "Hi, Alice!"
func GreetWith(name, greeting string) (string, error) {
	msg, trimmed, err := format(defaultTemplate, name, greeting)
	if err != nil {
		return "", err
	}
	observability.LogGreeting(pkgLogger, trimmed)
	return msg, nil
}

// format validates the name and renders the message. Returns the rendered
// message and the trimmed name.
func format(tmpl *Template, name, greeting string) (string, string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", "", &ValueError{Arg: "name", Reason: "cannot be empty or whitespace only"}
	}
	return tmpl.Render(greeting, trimmed), trimmed, nil
}

// asText reports the string value of an element decoded from YAML or
// JSON. Non-string elements (including nil) yield a *TypeError.
func asText(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &TypeError{Arg: "name", Got: v}
	}
	return s, nil
}
