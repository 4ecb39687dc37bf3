package temporal

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/tj/go-naturaldate"

	"github.com/teemow/naturaltime/internal/logging"
)

// Inputs for which the natural language delegate legitimately hands the
// reference time back unchanged. For anything else an unchanged result
// means the delegate found nothing to parse.
var nowPhrases = map[string]bool{
	"now":       true,
	"right now": true,
	"currently": true,
	"today":     true,
}

// resolveDelegate is the general fallback: natural language phrases go to
// go-naturaldate with the direction preference, absolute literal formats
// ("Jan 2 2026", "02/01/2026") to dateparse in the resolved zone.
func resolveDelegate(text string, env parseEnv) (time.Time, bool) {
	direction := naturaldate.WithDirection(naturaldate.Past)
	if env.future {
		direction = naturaldate.WithDirection(naturaldate.Future)
	}

	result, err := safeNaturalParse(text, env.now, direction)
	if err == nil && acceptDelegate(text, result, env.now) {
		return adjustNextWeekday(text, result, env.now), true
	}
	if err != nil {
		slog.Warn("natural language parse failed",
			logging.Expression(text), logging.Err(err))
	}

	if t, err := dateparse.ParseIn(text, env.loc); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// safeNaturalParse shields callers from delegate panics; a failure of the
// library must degrade to "no match", not crash the caller's request.
func safeNaturalParse(text string, ref time.Time, opts ...naturaldate.Option) (t time.Time, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("naturaldate: %v", r)
		}
	}()
	return naturaldate.Parse(text, ref, opts...)
}

// acceptDelegate filters the delegate's no-op results. go-naturaldate
// reports no error for text it cannot interpret and returns the reference
// time unchanged, so an unchanged result only counts when the input
// actually names the present.
func acceptDelegate(text string, result, now time.Time) bool {
	if !result.Equal(now) {
		return true
	}
	return nowPhrases[strings.ToLower(strings.TrimSpace(text))]
}

// adjustNextWeekday post-corrects "next <weekday>" phrases the delegate
// resolved into the current week, forcing them into the following week
// while preserving the delegate's time of day. Shares the offset rule with
// the day-of-week resolver.
func adjustNextWeekday(text string, result, now time.Time) time.Time {
	m := nextDayRe.FindStringSubmatch(strings.ToLower(text))
	if m == nil {
		return result
	}
	if daysBetween(now, result) >= 7 {
		return result
	}

	offset := daysUntilNext(now.Weekday(), dayNames[m[1]])
	rebased := time.Date(now.Year(), now.Month(), now.Day(),
		result.Hour(), result.Minute(), result.Second(), result.Nanosecond(),
		result.Location())
	return rebased.AddDate(0, 0, offset)
}
