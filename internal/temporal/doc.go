// Package temporal resolves natural language temporal expressions into
// timezone-aware instants, date ranges and recurrence rules.
//
// The package layers several resolution strategies from most to least
// specific: an ISO-8601 fast path, fixed literal idioms ("day before
// yesterday"), a day-of-week resolver ("next monday at 10am"), a bare
// month-name resolver, and finally a general natural language delegate.
// The first strategy to produce a result wins.
//
// All functions are pure: they read nothing but their arguments (the
// reference instant defaults to the current time when unset) and are safe
// for concurrent use. Malformed user input never produces an error or a
// panic; every resolver degrades to a "no match" result, and invalid
// timezone names silently fall back to UTC. Callers are expected to treat
// a failed resolution as "ask the user to rephrase" and may surface
// ParseHint as guidance.
//
// Example usage:
//
//	opts := temporal.Options{Timezone: "Europe/Berlin"}
//	when, ok := temporal.Parse("next monday at 10am", opts)
//	if !ok {
//	    fmt.Println(temporal.ParseHint)
//	}
//
//	week, ok := temporal.ParseWeekRange("next 2 weeks", opts)
//
//	rec := temporal.ParseRecurrence("every weekday until march", opts)
package temporal
