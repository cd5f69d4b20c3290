package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/greetkit/pkg/greet"
)

// File is a decoded greeter configuration document.
// Zero-valued fields mean "use the greet package default".
type File struct {
	// DefaultGreeting is the greeting word for greet.WithDefaultGreeting.
	DefaultGreeting string `yaml:"default_greeting" json:"default_greeting"`

	// CaseSensitive maps to greet.WithCaseSensitive. A nil pointer keeps
	// the default (true) rather than forcing false.
	CaseSensitive *bool `yaml:"case_sensitive" json:"case_sensitive"`

	// Template is a custom message template for greet.WithTemplate.
	Template string `yaml:"template" json:"template"`

	// Names is an optional roster, kept as decoded so non-string entries
	// survive for greet.GreetValuesSafe to skip.
	Names []any `yaml:"names" json:"names"`
}

// FromFile loads a configuration document, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return File{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses a YAML document into a File.
func FromYAML(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse yaml: %w", err)
	}
	return f, nil
}

// FromJSON parses a JSON document into a File.
func FromJSON(data []byte) (File, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse json: %w", err)
	}
	return f, nil
}

// Options translates the document into greet.Option values for
// greet.NewGreeter. Unset fields contribute no option.
//
// Value validation (empty default greeting, bad template) is left to
// NewGreeter so config stays a pure translation layer.
func (f File) Options() []greet.Option {
	var opts []greet.Option
	if f.DefaultGreeting != "" {
		opts = append(opts, greet.WithDefaultGreeting(f.DefaultGreeting))
	}
	if f.CaseSensitive != nil {
		opts = append(opts, greet.WithCaseSensitive(*f.CaseSensitive))
	}
	if f.Template != "" {
		opts = append(opts, greet.WithTemplate(f.Template))
	}
	return opts
}
