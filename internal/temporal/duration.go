package temporal

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const defaultDurationMinutes = 60

var (
	hoursComponentRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hour|hr|h)s?`)
	minutesComponentRe = regexp.MustCompile(`(\d+)\s*(?:minute|min|m)s?\b`)
)

// ParseDuration interprets a duration string as whole minutes. Bare digits
// are taken as minutes directly; otherwise an hours component ("1.5 hours")
// and a minutes component ("30 minutes") are summed, so "1 hour 30 minutes"
// works. Unrecognized input yields the 60 minute default.
func ParseDuration(text string) int {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return defaultDurationMinutes
	}

	if n, err := strconv.Atoi(lower); err == nil && n >= 0 {
		return n
	}

	switch lower {
	case "half hour", "half an hour", "a half hour", "30 mins":
		return 30
	case "quarter hour", "quarter of an hour", "15 mins":
		return 15
	}

	total := 0
	if m := hoursComponentRe.FindStringSubmatch(lower); m != nil {
		if hours, err := strconv.ParseFloat(m[1], 64); err == nil {
			total += int(math.Round(hours * 60))
		}
	}
	if m := minutesComponentRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}

	if total > 0 {
		return total
	}
	return defaultDurationMinutes
}
