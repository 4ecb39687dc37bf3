package temporal

import (
	"strings"
	"time"
)

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// resolveMonth handles a bare month name, resolving to the first of that
// month in the nearest year matching the direction preference. This covers
// phrases like "until march" deterministically.
func resolveMonth(text string, env parseEnv) (time.Time, bool) {
	month, ok := monthNames[strings.ToLower(text)]
	if !ok {
		return time.Time{}, false
	}

	year := env.now.Year()
	if env.future {
		if env.now.Month() >= month {
			year++
		}
	} else {
		if env.now.Month() <= month {
			year--
		}
	}
	return time.Date(year, month, 1, 0, 0, 0, 0, env.loc), true
}
