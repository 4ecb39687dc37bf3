package temporal

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	simpleHoursRe = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)
	clockHoursRe  = regexp.MustCompile(`^(\d{1,2}):\d{2}-(\d{1,2}):\d{2}$`)
	ampmHoursRe   = regexp.MustCompile(`^(\d{1,2})\s*([ap]m?)?\s*(?:-|to)\s*(\d{1,2})\s*([ap]m?)?$`)
)

// ParseWorkingHours interprets a working hours string like "9-17",
// "9:00-17:00", "9am-5pm" or "9am to 5pm" as a pair of 24-hour integers.
// Anything it cannot interpret, including hours outside 0-23, yields
// DefaultWorkingHours.
func ParseWorkingHours(text string) WorkingHours {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return DefaultWorkingHours
	}

	if m := simpleHoursRe.FindStringSubmatch(lower); m != nil {
		return validWorkingHours(atoi(m[1]), atoi(m[2]))
	}

	if m := clockHoursRe.FindStringSubmatch(lower); m != nil {
		return validWorkingHours(atoi(m[1]), atoi(m[2]))
	}

	if m := ampmHoursRe.FindStringSubmatch(lower); m != nil {
		return validWorkingHours(to24Hour(atoi(m[1]), m[2]), to24Hour(atoi(m[3]), m[4]))
	}

	return DefaultWorkingHours
}

// to24Hour converts an hour with an optional am/pm marker: 12am is 0,
// 12pm stays 12, other pm hours gain 12.
func to24Hour(hour int, marker string) int {
	switch {
	case strings.Contains(marker, "p") && hour != 12:
		return hour + 12
	case strings.Contains(marker, "a") && hour == 12:
		return 0
	}
	return hour
}

func validWorkingHours(start, end int) WorkingHours {
	if start < 0 || start > 23 || end < 0 || end > 23 {
		return DefaultWorkingHours
	}
	return WorkingHours{Start: start, End: end}
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
