/*
Package config loads greeter configuration from YAML or JSON documents.

# Overview

config parses a small document describing a greeter and translates it
into greet.Option values:

	default_greeting: Good morning
	case_sensitive: false
	template: "${greeting}, ${name}!"
	names:
	  - Alice
	  - Bob

The names list is kept as decoded ([]any), so it can be handed directly
to greet.GreetValuesSafe, which skips any non-string entries a document
may contain.

# Usage

	cfg, err := config.FromFile("greeter.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	g, err := greet.NewGreeter(cfg.Options()...)
	if err != nil {
	    log.Fatal(err)
	}

	msgs := greet.GreetValuesSafe(cfg.Names, g.DefaultGreeting())

Fields left out of the document keep the greet package defaults.
*/
package config
