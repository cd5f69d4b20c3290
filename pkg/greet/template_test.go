package greet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseTemplate_Valid accepts templates over the two placeholders.
func TestParseTemplate_Valid(t *testing.T) {
	valid := []string{
		defaultTemplateText,
		"${name}",
		"${greeting}",
		"${greeting} ${greeting}, ${name}${name}",
		"no placeholders at all",
		"$name without braces is literal",
	}

	for _, text := range valid {
		t.Run(text, func(t *testing.T) {
			tmpl, err := ParseTemplate(text)
			require.NoError(t, err)
			assert.Equal(t, text, tmpl.Text())
		})
	}
}

// TestParseTemplate_Invalid rejects unknown placeholders and blank
// templates.
func TestParseTemplate_Invalid(t *testing.T) {
	t.Run("unknown placeholder", func(t *testing.T) {
		_, err := ParseTemplate("${salutation}, ${name}!")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadTemplate)

		var tmplErr *TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, []string{"salutation"}, tmplErr.Unknown)
	})

	t.Run("multiple unknown placeholders", func(t *testing.T) {
		_, err := ParseTemplate("${a} ${b}")
		var tmplErr *TemplateError
		require.ErrorAs(t, err, &tmplErr)
		assert.Equal(t, []string{"a", "b"}, tmplErr.Unknown)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := ParseTemplate("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadTemplate)
	})

	t.Run("whitespace only", func(t *testing.T) {
		_, err := ParseTemplate("  \t ")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBadTemplate)
	})
}

// TestTemplate_Render substitutes both placeholders.
func TestTemplate_Render(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		want     string
	}{
		{"default", "${greeting}, ${name}!", "Hi, Alice!"},
		{"reordered", "${name}: ${greeting}", "Alice: Hi"},
		{"repeated", "${name} ${name}", "Alice Alice"},
		{"literal dollar", "$greeting, ${name}!", "$greeting, Alice!"},
		{"no placeholders", "howdy", "howdy"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tc.template)
			require.NoError(t, err)
			assert.Equal(t, tc.want, tmpl.Render("Hi", "Alice"))
		})
	}
}
