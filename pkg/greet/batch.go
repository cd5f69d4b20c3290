package greet

import (
	"context"

	"github.com/randalmurphal/greetkit/pkg/greet/observability"
)

// GreetMany formats a greeting for every name, in input order.
//
// The first invalid name aborts the whole batch: no partial result is
// returned, and the error is a *BatchError wrapping that name's
// *ValueError. An empty input returns an empty, non-nil slice.
//
// One info log line records the batch size before processing.
func GreetMany(names []string, greeting string) ([]string, error) {
	observability.LogBatchStart(pkgLogger, len(names))

	messages := make([]string, 0, len(names))
	for i, name := range names {
		msg, err := GreetWith(name, greeting)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GreetManySafe formats a greeting for every valid name, silently
// omitting invalid ones while preserving relative order.
//
// Each skipped name produces one warn log line; a final info line
// summarizes produced and skipped counts.
func GreetManySafe(names []string, greeting string) []string {
	messages := make([]string, 0, len(names))
	skipped := 0

	for _, name := range names {
		msg, err := GreetWith(name, greeting)
		if err != nil {
			skipped++
			observability.LogSkippedName(pkgLogger, name, err)
			continue
		}
		messages = append(messages, msg)
	}

	observability.LogBatchSummary(pkgLogger, len(messages), skipped)
	pkgMetrics.RecordBatch(context.Background(), len(messages), skipped)
	return messages
}

// GreetValues is GreetMany over input decoded from YAML or JSON, where
// elements may not be strings. A non-string element aborts the batch with
// a *BatchError wrapping a *TypeError.
func GreetValues(values []any, greeting string) ([]string, error) {
	observability.LogBatchStart(pkgLogger, len(values))

	messages := make([]string, 0, len(values))
	for i, v := range values {
		name, err := asText(v)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		msg, err := GreetWith(name, greeting)
		if err != nil {
			return nil, &BatchError{Index: i, Err: err}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// GreetValuesSafe is GreetManySafe over input decoded from YAML or JSON.
// Non-string elements (including nil) are skipped alongside empty and
// whitespace-only names.
func GreetValuesSafe(values []any, greeting string) []string {
	messages := make([]string, 0, len(values))
	skipped := 0

	for _, v := range values {
		name, err := asText(v)
		if err == nil {
			var msg string
			msg, err = GreetWith(name, greeting)
			if err == nil {
				messages = append(messages, msg)
				continue
			}
		}
		skipped++
		observability.LogSkippedValue(pkgLogger, v, err)
	}

	observability.LogBatchSummary(pkgLogger, len(messages), skipped)
	pkgMetrics.RecordBatch(context.Background(), len(messages), skipped)
	return messages
}
