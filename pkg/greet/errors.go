package greet

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for argument validation.
var (
	// ErrInvalidValue indicates a text argument was empty or whitespace-only
	// where a non-empty value is required.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidType indicates a dynamic argument was not text where text
	// is required.
	ErrInvalidType = errors.New("invalid type")

	// ErrBadTemplate indicates a message template could not be parsed.
	ErrBadTemplate = errors.New("invalid message template")
)

// ValueError indicates a text argument failed value validation.
type ValueError struct {
	// Arg is the argument that failed ("name", "default greeting").
	Arg string
	// Reason describes the failure.
	Reason string
}

// Error implements the error interface.
func (e *ValueError) Error() string {
	return fmt.Sprintf("%s %s", e.Arg, e.Reason)
}

// Unwrap returns ErrInvalidValue for errors.Is support.
func (e *ValueError) Unwrap() error {
	return ErrInvalidValue
}

// TypeError indicates a dynamic argument was not text.
type TypeError struct {
	// Arg is the argument that failed ("name").
	Arg string
	// Got is the value received.
	Got any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s must be text, got %T", e.Arg, e.Got)
}

// Unwrap returns ErrInvalidType for errors.Is support.
func (e *TypeError) Unwrap() error {
	return ErrInvalidType
}

// BatchError wraps a per-element failure from strict batch formatting.
// It identifies which element aborted the batch.
type BatchError struct {
	// Index is the position of the failing element in the input.
	Index int
	// Err is the underlying validation error.
	Err error
}

// Error implements the error interface.
func (e *BatchError) Error() string {
	return fmt.Sprintf("name %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BatchError) Unwrap() error {
	return e.Err
}

// TemplateError indicates a message template failed validation.
type TemplateError struct {
	// Template is the rejected template text.
	Template string
	// Unknown lists placeholders that are not ${greeting} or ${name}.
	Unknown []string
	// Reason describes failures not tied to a placeholder.
	Reason string
}

// Error implements the error interface.
func (e *TemplateError) Error() string {
	if len(e.Unknown) > 0 {
		return fmt.Sprintf("template %q: unknown placeholders: %s",
			e.Template, strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("template %q: %s", e.Template, e.Reason)
}

// Unwrap returns ErrBadTemplate for errors.Is support.
func (e *TemplateError) Unwrap() error {
	return ErrBadTemplate
}
