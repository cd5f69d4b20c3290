/*
Package greet formats greeting messages from names and greeting words.

# Overview

greet is a small library for producing greeting messages of the form
"<greeting>, <name>!". It provides stateless formatting functions, batch
variants with strict and tolerant error policies, and a stateful Greeter
that records greeting history and derives aggregate statistics from it.

# Basic Usage

Format a single greeting:

	msg, err := greet.Greet("World")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(msg) // "Hello, World!"

	msg, _ = greet.GreetWith("Alice", "Hi")
	fmt.Println(msg) // "Hi, Alice!"

Names are trimmed before formatting; greeting words are used verbatim.
A name that is empty or whitespace-only yields a *ValueError.

# Batch Formatting

GreetMany formats every name or fails on the first invalid one:

	msgs, err := greet.GreetMany([]string{"Alice", "Bob"}, "Hello")
	// ["Hello, Alice!", "Hello, Bob!"]

GreetManySafe skips invalid names instead of failing, logging one warning
per skipped entry:

	msgs := greet.GreetManySafe([]string{"Alice", "", "Bob"}, "Hello")
	// ["Hello, Alice!", "Hello, Bob!"]

GreetValues and GreetValuesSafe accept []any for input decoded from YAML
or JSON, where elements may not be strings. Non-string elements produce a
*TypeError (strict) or are skipped (tolerant).

# Stateful Greeter

Greeter binds a default greeting word and records every message it
produces:

	g, err := greet.NewGreeter(greet.WithDefaultGreeting("Hi"))
	if err != nil {
	    log.Fatal(err)
	}

	ctx := context.Background()
	g.Greet(ctx, "World")         // "Hi, World!"
	g.GreetWith(ctx, "Bob", "Hey") // "Hey, Bob!"

	stats := g.Statistics()
	// stats.TotalGreetings == 2
	// stats.UniqueNames == 2
	// stats.MostCommonGreeting == "Hi"

With WithCaseSensitive(false), names are title-cased before formatting:
greeting "bob smith" produces "Hi, Bob Smith!".

History is append-only and cleared only by ClearHistory. Statistics are
recomputed on demand from the structured history records, never stored.

# Templates

The message shape is controlled by a template with ${greeting} and ${name}
placeholders. The default is "${greeting}, ${name}!". Greeters accept a
custom template via WithTemplate; unknown placeholders fail at
construction.

# Error Handling

Validation failures are typed and support errors.Is/As:

	_, err := greet.Greet("   ")
	var valErr *greet.ValueError
	if errors.As(err, &valErr) {
	    log.Printf("bad %s: %v", valErr.Arg, err)
	}
	errors.Is(err, greet.ErrInvalidValue) // true

Batch failures are wrapped in *BatchError carrying the offending index.

# Observability

Logging uses log/slog. Package-level functions log through a process-wide
logger replaceable with SetLogger; Greeters take their own via WithLogger.
OpenTelemetry metrics and tracing are opt-in through the observability
subpackage:

	g, _ := greet.NewGreeter(
	    greet.WithLogger(logger),
	    greet.WithMetrics(observability.NewMetricsRecorder()),
	    greet.WithSpans(observability.NewSpanManager()),
	)

# Thread Safety

  - Package-level formatting functions are safe for concurrent use once
    SetLogger/SetMetrics configuration has settled.
  - Greeter is NOT safe for concurrent use; callers sharing one instance
    must serialize access externally.

# Subpackages

  - config: greeter configuration loading (YAML, JSON)
  - observability: logging, metrics, and tracing helpers
*/
package greet
