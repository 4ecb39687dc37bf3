// Package schedule materializes parsed temporal values into scheduling
// primitives: RRULE strings and concrete occurrences for calendar event
// payloads, and available meeting slots within a time window.
//
// The package consumes the outputs of internal/temporal (recurrence rules,
// working hours, durations, ranges) and, like that package, is pure: slot
// search operates on caller-supplied busy intervals rather than querying a
// calendar backend.
//
// Example usage:
//
//	rec := temporal.ParseRecurrence("every weekday until march", temporal.Options{})
//	rule, err := schedule.RRuleString(rec, start)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// rule is "RRULE:FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR;UNTIL=..."
package schedule
