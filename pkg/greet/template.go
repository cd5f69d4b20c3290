package greet

import (
	"regexp"
	"strings"
)

// placeholderPattern matches ${varname} - varname can contain alphanumeric
// and underscore.
var placeholderPattern = regexp.MustCompile(`\$\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// defaultTemplateText is the standard message shape.
const defaultTemplateText = "${greeting}, ${name}!"

// Template renders greeting messages from ${greeting} and ${name}
// placeholders. Create with ParseTemplate; validation happens there, so
// Render cannot fail.
//
// Template is safe for concurrent use after construction.
type Template struct {
	text string
}

// ParseTemplate validates and compiles a message template.
//
// The template may reference ${greeting} and ${name}. Any other
// placeholder, or a template with no non-whitespace content, returns a
// *TemplateError.
func ParseTemplate(text string) (*Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &TemplateError{Template: text, Reason: "empty or whitespace only"}
	}

	var unknown []string
	for _, match := range placeholderPattern.FindAllStringSubmatch(text, -1) {
		switch match[1] {
		case "greeting", "name":
		default:
			unknown = append(unknown, match[1])
		}
	}
	if len(unknown) > 0 {
		return nil, &TemplateError{Template: text, Unknown: unknown}
	}

	return &Template{text: text}, nil
}

// Render substitutes the greeting and name into the template.
func (t *Template) Render(greeting, name string) string {
	return placeholderPattern.ReplaceAllStringFunc(t.text, func(match string) string {
		switch match[2 : len(match)-1] {
		case "greeting":
			return greeting
		case "name":
			return name
		}
		return match
	})
}

// Text returns the template source text.
func (t *Template) Text() string {
	return t.text
}

// defaultTemplate renders "${greeting}, ${name}!". Package-level
// formatting functions always use it.
var defaultTemplate = &Template{text: defaultTemplateText}
