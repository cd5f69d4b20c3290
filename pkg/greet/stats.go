package greet

// Stats is a point-in-time read of a Greeter's history. It is derived on
// demand and never stored.
type Stats struct {
	// TotalGreetings is the number of messages in history.
	TotalGreetings int
	// UniqueNames is the number of distinct recipient names greeted.
	UniqueNames int
	// MostCommonGreeting is the greeting word appearing most often, or ""
	// when history is empty. Frequency ties break toward the greeting
	// that appeared first in history.
	MostCommonGreeting string
}

// Statistics computes aggregate statistics over the current history.
//
// An empty history yields the zero Stats.
func (g *Greeter) Statistics() Stats {
	if len(g.history) == 0 {
		return Stats{}
	}

	names := make(map[string]struct{}, len(g.history))
	counts := make(map[string]int, len(g.history))
	firstSeen := make(map[string]int, len(g.history))

	mostCommon := ""
	best := 0
	for _, rec := range g.history {
		names[rec.Name] = struct{}{}

		if _, ok := firstSeen[rec.Greeting]; !ok {
			firstSeen[rec.Greeting] = len(firstSeen)
		}
		counts[rec.Greeting]++

		c := counts[rec.Greeting]
		if c > best || (c == best && firstSeen[rec.Greeting] < firstSeen[mostCommon]) {
			best = c
			mostCommon = rec.Greeting
		}
	}

	return Stats{
		TotalGreetings:     len(g.history),
		UniqueNames:        len(names),
		MostCommonGreeting: mostCommon,
	}
}
