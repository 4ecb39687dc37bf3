package temporal

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	pastWeeksRe = regexp.MustCompile(`^(?:past|last)\s+(\d+)\s+weeks?`)
	nextWeeksRe = regexp.MustCompile(`^next\s+(\d+)\s+weeks?`)
	pastDaysRe  = regexp.MustCompile(`^(?:past|last)\s+(\d+)\s+days?`)
	nextDaysRe  = regexp.MustCompile(`^next\s+(\d+)\s+days?`)
)

// ParseWeekRange recognizes relative range expressions like "this week",
// "past 7 days" or "next 2 weeks". Week boundaries are the business week:
// Monday 00:00:00 through Friday 23:59:59. It returns false when the text
// is not a range expression at all, which is distinct from a parse error;
// callers use this to fall through to single-instant resolution.
func ParseWeekRange(text string, opts Options) (Range, bool) {
	loc := resolveLocation(opts.Timezone)
	now := opts.Base
	if now.IsZero() {
		now = time.Now().In(loc)
	}
	lower := strings.ToLower(strings.TrimSpace(text))

	monday := startOfDay(now.AddDate(0, 0, -mondayIndex(now.Weekday())))
	friday := endOfDay(monday.AddDate(0, 0, 4))

	switch lower {
	case "this week", "current week":
		return Range{Start: monday, End: friday}, true
	case "next week":
		start := monday.AddDate(0, 0, 7)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 4))}, true
	case "last week":
		start := monday.AddDate(0, 0, -7)
		return Range{Start: start, End: endOfDay(start.AddDate(0, 0, 4))}, true
	}

	if m := pastWeeksRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Start: monday.AddDate(0, 0, -7*n), End: friday}, true
	}
	if m := nextWeeksRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Start: monday, End: endOfDay(monday.AddDate(0, 0, 7*n+4))}, true
	}
	if m := pastDaysRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Start: startOfDay(now.AddDate(0, 0, -n)), End: endOfDay(now)}, true
	}
	if m := nextDaysRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Start: startOfDay(now), End: endOfDay(now.AddDate(0, 0, n))}, true
	}

	return Range{}, false
}

// ParseDateRange resolves a start and end expression into a range. Either
// field of the result may be the zero time when its side could not be
// interpreted.
//
// Identical start and end strings are treated as a single range expression
// ("this week", "this week"). Otherwise each side is checked for a week
// range phrase (the start side contributes its start boundary, the end side
// its end boundary) before falling back to single-instant resolution with a
// future preference; the end side additionally resolves date-only input to
// end of day.
func ParseDateRange(startText, endText string, opts Options) Range {
	if strings.EqualFold(strings.TrimSpace(startText), strings.TrimSpace(endText)) {
		if r, ok := ParseWeekRange(startText, opts); ok {
			return r
		}
	}

	startOpts := opts
	startOpts.Direction = DirectionFuture
	startOpts.EndOfDay = false
	endOpts := opts
	endOpts.Direction = DirectionFuture
	endOpts.EndOfDay = true

	var r Range
	if wr, ok := ParseWeekRange(startText, opts); ok {
		r.Start = wr.Start
	} else if t, ok := Parse(startText, startOpts); ok {
		r.Start = t
	}
	if wr, ok := ParseWeekRange(endText, opts); ok {
		r.End = wr.End
	} else if t, ok := Parse(endText, endOpts); ok {
		r.End = t
	}

	if !r.Start.IsZero() && !r.End.IsZero() && !r.End.After(r.Start) {
		// Across calendar dates the user most likely meant the next
		// occurrence. On a single date the reversed clock times are
		// left alone for the caller to sort out.
		if !sameDate(r.Start, r.End) {
			r.End = r.End.AddDate(0, 0, 7)
		}
	}
	return r
}
