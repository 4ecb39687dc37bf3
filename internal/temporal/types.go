package temporal

import (
	"time"
)

// ParseHint describes the supported input formats. Callers surface it to
// users when a resolution fails.
const ParseHint = "Supported formats: 'tomorrow', 'next monday', 'in 3 days', " +
	"'2026-01-20', 'tomorrow at 2pm', 'this week', 'last week'"

// Direction is the preference for resolving ambiguous relative expressions.
type Direction int

const (
	// DirectionAuto derives the preference lexically from the input text
	// and falls back to future when the text is neutral.
	DirectionAuto Direction = iota
	DirectionFuture
	DirectionPast
)

func (d Direction) String() string {
	switch d {
	case DirectionFuture:
		return "future"
	case DirectionPast:
		return "past"
	}
	return "auto"
}

// Options control how an expression is resolved.
type Options struct {
	// Timezone is an IANA zone name. Empty or unknown names fall back to
	// UTC; an unknown name is logged but never reported as an error.
	Timezone string

	// Direction biases ambiguous relative expressions toward the future
	// or the past. DirectionAuto detects the bias from the input text.
	Direction Direction

	// EndOfDay replaces a resolved midnight with 23:59:59 of the same
	// date, for date-only input interpreted as an inclusive range end.
	EndOfDay bool

	// Base is the reference instant for relative expressions. The zero
	// value means the current time in the resolved zone.
	Base time.Time
}

// Range is an ordered pair of instants.
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Frequency is the base unit of a recurrence rule.
type Frequency string

const (
	FreqDaily   Frequency = "DAILY"
	FreqWeekly  Frequency = "WEEKLY"
	FreqMonthly Frequency = "MONTHLY"
	FreqYearly  Frequency = "YEARLY"
)

// Recurrence is a structured description of a repeating schedule.
// Count and Until are mutually exclusive; at most one is set.
type Recurrence struct {
	Frequency Frequency `json:"frequency"`
	Interval  int       `json:"interval"`
	ByDay     []string  `json:"byDay,omitempty"` // two-letter codes in Monday-first order
	Count     int       `json:"count,omitempty"`
	Until     string    `json:"until,omitempty"` // calendar date, YYYY-MM-DD
}

// WorkingHours is a start/end pair of hours in 24-hour form.
type WorkingHours struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// DefaultWorkingHours is returned when a working hours string cannot be
// interpreted.
var DefaultWorkingHours = WorkingHours{Start: 9, End: 17}
