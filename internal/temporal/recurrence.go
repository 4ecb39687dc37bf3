package temporal

import (
	"regexp"
	"strconv"
	"strings"
)

// Fixed aliases checked by exact or prefix match, in order.
var frequencyAliases = []struct {
	alias    string
	freq     Frequency
	interval int
}{
	{"daily", FreqDaily, 1},
	{"every day", FreqDaily, 1},
	{"weekly", FreqWeekly, 1},
	{"every week", FreqWeekly, 1},
	{"biweekly", FreqWeekly, 2},
	{"bi-weekly", FreqWeekly, 2},
	{"fortnightly", FreqWeekly, 2},
	{"monthly", FreqMonthly, 1},
	{"every month", FreqMonthly, 1},
	{"yearly", FreqYearly, 1},
	{"annually", FreqYearly, 1},
	{"every year", FreqYearly, 1},
}

var weekdayCodes = map[string]string{
	"monday": "MO", "mon": "MO",
	"tuesday": "TU", "tue": "TU", "tues": "TU",
	"wednesday": "WE", "wed": "WE",
	"thursday": "TH", "thu": "TH", "thur": "TH", "thurs": "TH",
	"friday": "FR", "fri": "FR",
	"saturday": "SA", "sat": "SA",
	"sunday": "SU", "sun": "SU",
}

// Canonical Monday-first order for by-day sets.
var weekdayCodeOrder = []string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

var (
	weekdayNameRe = regexp.MustCompile(`\b(` + dayNameAlt + `)\b`)
	intervalRe    = regexp.MustCompile(`every\s+(\d+)\s+(day|week|month|year)s?`)
	countRe       = regexp.MustCompile(`for\s+(\d+)\s+(day|week|month|year)s?`)
	untilRe       = regexp.MustCompile(`until\s+(.+?)(?:\s*$|\s+for|\s+every)`)
)

// ParseRecurrence turns a natural language recurrence phrase into a
// structured rule, or nil when the phrase establishes no frequency.
//
// Rules accumulate in order: frequency aliases, weekday/weekend shorthands
// (which short-circuit), explicit weekday sets, "every N <unit>" intervals,
// "for N <unit>" occurrence counts and "until <date>" bounds. Count and
// until are mutually exclusive; whichever is set last wins.
func ParseRecurrence(text string, opts Options) *Recurrence {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return nil
	}

	rec := &Recurrence{Interval: 1}
	hasFreq := false

	for _, a := range frequencyAliases {
		if lower == a.alias || strings.HasPrefix(lower, a.alias+" ") {
			rec.Frequency = a.freq
			rec.Interval = a.interval
			hasFreq = true
			break
		}
	}

	if strings.Contains(lower, "every weekday") || strings.Contains(lower, "weekdays") {
		rec.Frequency = FreqWeekly
		rec.ByDay = []string{"MO", "TU", "WE", "TH", "FR"}
		return rec
	}
	if strings.Contains(lower, "every weekend") || strings.Contains(lower, "weekends") {
		rec.Frequency = FreqWeekly
		rec.ByDay = []string{"SA", "SU"}
		return rec
	}

	if days := weekdayNameRe.FindAllStringSubmatch(lower, -1); len(days) > 0 &&
		(strings.Contains(lower, "every") || strings.Contains(lower, "on")) {
		seen := make(map[string]bool)
		for _, d := range days {
			seen[weekdayCodes[d[1]]] = true
		}
		for _, code := range weekdayCodeOrder {
			if seen[code] {
				rec.ByDay = append(rec.ByDay, code)
			}
		}
		rec.Frequency = FreqWeekly
		return rec
	}

	if m := intervalRe.FindStringSubmatch(lower); m != nil {
		rec.Interval, _ = strconv.Atoi(m[1])
		switch m[2] {
		case "day":
			rec.Frequency = FreqDaily
		case "week":
			rec.Frequency = FreqWeekly
		case "month":
			rec.Frequency = FreqMonthly
		case "year":
			rec.Frequency = FreqYearly
		}
		hasFreq = true
	}

	if m := countRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		freq := rec.Frequency
		if !hasFreq {
			freq = FreqDaily
		}
		// Convert a duration into an occurrence count relative to the
		// frequency already established.
		switch m[2] {
		case "day":
			switch freq {
			case FreqDaily:
				rec.Count = n
			case FreqWeekly:
				rec.Count = n / 7
				if rec.Count == 0 {
					rec.Count = 1
				}
			}
		case "week":
			switch freq {
			case FreqDaily:
				rec.Count = n * 7
			case FreqWeekly:
				rec.Count = n
			}
		}
		if rec.Count > 0 {
			rec.Until = ""
		}
	}

	if m := untilRe.FindStringSubmatch(lower); m != nil {
		untilOpts := Options{Timezone: opts.Timezone, Base: opts.Base}
		if t, ok := Parse(strings.TrimSpace(m[1]), untilOpts); ok {
			rec.Until = t.Format("2006-01-02")
			rec.Count = 0
		}
	}

	if !hasFreq {
		return nil
	}
	return rec
}
