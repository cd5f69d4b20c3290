package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/greetkit/pkg/greet"
)

const sampleYAML = `
default_greeting: Howdy
case_sensitive: false
template: "${greeting} there, ${name}!"
names:
  - alice
  - bob
  - 42
`

const sampleJSON = `{
  "default_greeting": "Howdy",
  "case_sensitive": false,
  "names": ["alice", "bob"]
}`

// TestFromYAML parses a full document.
func TestFromYAML(t *testing.T) {
	cfg, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "Howdy", cfg.DefaultGreeting)
	require.NotNil(t, cfg.CaseSensitive)
	assert.False(t, *cfg.CaseSensitive)
	assert.Equal(t, "${greeting} there, ${name}!", cfg.Template)

	// Names keep their decoded types, including the non-string entry.
	require.Len(t, cfg.Names, 3)
	assert.Equal(t, "alice", cfg.Names[0])
	assert.Equal(t, 42, cfg.Names[2])
}

// TestFromYAML_Empty leaves every field at its zero value.
func TestFromYAML_Empty(t *testing.T) {
	cfg, err := FromYAML([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, cfg.DefaultGreeting)
	assert.Nil(t, cfg.CaseSensitive)
	assert.Nil(t, cfg.Names)
}

// TestFromYAML_Invalid surfaces parse errors.
func TestFromYAML_Invalid(t *testing.T) {
	_, err := FromYAML([]byte("default_greeting: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse yaml")
}

// TestFromJSON parses a JSON document.
func TestFromJSON(t *testing.T) {
	cfg, err := FromJSON([]byte(sampleJSON))
	require.NoError(t, err)

	assert.Equal(t, "Howdy", cfg.DefaultGreeting)
	require.NotNil(t, cfg.CaseSensitive)
	assert.False(t, *cfg.CaseSensitive)
	assert.Len(t, cfg.Names, 2)
}

// TestFromJSON_Invalid surfaces parse errors.
func TestFromJSON_Invalid(t *testing.T) {
	_, err := FromJSON([]byte("{"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse json")
}

// TestFromFile dispatches on extension.
func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "greeter.yaml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

		cfg, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Howdy", cfg.DefaultGreeting)
	})

	t.Run("yml", func(t *testing.T) {
		path := filepath.Join(dir, "greeter.yml")
		require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

		_, err := FromFile(path)
		require.NoError(t, err)
	})

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "greeter.json")
		require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

		cfg, err := FromFile(path)
		require.NoError(t, err)
		assert.Equal(t, "Howdy", cfg.DefaultGreeting)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(dir, "greeter.toml")
		require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

		_, err := FromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported config file extension")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FromFile(filepath.Join(dir, "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})
}

// TestFileOptions builds a greeter from the translated options.
func TestFileOptions(t *testing.T) {
	cfg, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	g, err := greet.NewGreeter(cfg.Options()...)
	require.NoError(t, err)

	assert.Equal(t, "Howdy", g.DefaultGreeting())
	assert.False(t, g.CaseSensitive())

	msg, err := g.Greet(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "Howdy there, Alice!", msg)
}

// TestFileOptions_Empty contributes no options, keeping greet defaults.
func TestFileOptions_Empty(t *testing.T) {
	var cfg File
	assert.Empty(t, cfg.Options())

	g, err := greet.NewGreeter(cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, greet.DefaultGreeting, g.DefaultGreeting())
	assert.True(t, g.CaseSensitive())
}

// TestFileOptions_BadValuesSurfaceFromNewGreeter keeps config a pure
// translation layer: validation errors come from greet.
func TestFileOptions_BadValuesSurfaceFromNewGreeter(t *testing.T) {
	cfg, err := FromYAML([]byte(`default_greeting: "   "`))
	require.NoError(t, err)

	_, err = greet.NewGreeter(cfg.Options()...)
	require.Error(t, err)
	assert.ErrorIs(t, err, greet.ErrInvalidValue)
}

// TestRosterFlow feeds the decoded names straight into the tolerant
// batch formatter.
func TestRosterFlow(t *testing.T) {
	cfg, err := FromYAML([]byte(sampleYAML))
	require.NoError(t, err)

	msgs := greet.GreetValuesSafe(cfg.Names, cfg.DefaultGreeting)
	assert.Equal(t, []string{"Howdy, alice!", "Howdy, bob!"}, msgs)
}
