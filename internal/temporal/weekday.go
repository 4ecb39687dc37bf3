package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Weekday names and the common 3-4 letter abbreviations.
var dayNames = map[string]time.Weekday{
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday, "tues": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
	"sunday": time.Sunday, "sun": time.Sunday,
}

// Full names before abbreviations so "tuesday" is not cut short at "tue".
const dayNameAlt = `monday|tuesday|wednesday|thursday|friday|saturday|sunday|mon|tue|tues|wed|thu|thur|thurs|fri|sat|sun`

var (
	nextDayRe = regexp.MustCompile(`\bnext\s+(` + dayNameAlt + `)\b`)
	thisDayRe = regexp.MustCompile(`\bthis\s+(` + dayNameAlt + `)\b`)
	lastDayRe = regexp.MustCompile(`\blast\s+(` + dayNameAlt + `)\b`)

	timeClauseRe    = regexp.MustCompile(`\bat\s+(\d{1,2}(?::\d{2})?\s*(?:am|pm)?)`)
	leadingDigitsRe = regexp.MustCompile(`\d+`)
	clauseMinuteRe  = regexp.MustCompile(`:(\d{2})`)
)

// mondayIndex maps a weekday onto a Monday-anchored index (Monday = 0).
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// daysUntilNext returns the day offset for "next <weekday>". The result is
// always in the week after the current one: on the target weekday itself it
// is 7 days out, and a target later in the current week is still pushed past
// it. This is deliberate; "next X" never means the nearest future X.
func daysUntilNext(current, target time.Weekday) int {
	d := (int(target) - int(current) + 7) % 7
	if d == 0 {
		return 7
	}
	return d + 7
}

// parseTimeClause extracts an "at <time>" suffix. The hour defaults to a
// 24-hour reading when no am/pm marker is present, so bare "at 14" means
// 14:00. Without a clause the resolved time of day is midnight.
func parseTimeClause(lower string) (hour, minute int) {
	m := timeClauseRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, 0
	}
	clause := strings.TrimSpace(m[1])
	hour, _ = strconv.Atoi(leadingDigitsRe.FindString(clause))
	switch {
	case strings.Contains(clause, "pm"):
		if hour != 12 {
			hour += 12
		}
	case strings.Contains(clause, "am"):
		if hour == 12 {
			hour = 0
		}
	}
	if mm := clauseMinuteRe.FindStringSubmatch(clause); mm != nil {
		minute, _ = strconv.Atoi(mm[1])
	}
	return hour, minute
}

// resolveWeekday handles "next X", "this X" and "last X" day-of-week
// expressions, with an optional trailing clock time.
func resolveWeekday(text string, env parseEnv) (time.Time, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	hour, minute := parseTimeClause(lower)

	if m := nextDayRe.FindStringSubmatch(lower); m != nil {
		offset := daysUntilNext(env.now.Weekday(), dayNames[m[1]])
		return atClockTime(env.now.AddDate(0, 0, offset), hour, minute), true
	}

	if m := thisDayRe.FindStringSubmatch(lower); m != nil {
		// Occurrence within the current Monday-anchored week; on the
		// target weekday itself the result is today.
		offset := (int(dayNames[m[1]]) - int(env.now.Weekday()) + 7) % 7
		return atClockTime(env.now.AddDate(0, 0, offset), hour, minute), true
	}

	if m := lastDayRe.FindStringSubmatch(lower); m != nil {
		back := (int(env.now.Weekday()) - int(dayNames[m[1]]) + 7) % 7
		if back == 0 {
			back = 7
		}
		return atClockTime(env.now.AddDate(0, 0, -back), hour, minute), true
	}

	return time.Time{}, false
}

// atClockTime pins t to the given wall clock time, zeroing seconds.
func atClockTime(t time.Time, hour, minute int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}
