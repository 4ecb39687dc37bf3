package temporal

import (
	"log/slog"
	"strings"
	"time"

	"github.com/teemow/naturaltime/internal/logging"
)

// parseEnv carries the resolved settings through the strategy chain.
type parseEnv struct {
	loc    *time.Location
	now    time.Time
	future bool
}

// resolverFunc is one resolution strategy. Returning false means "not my
// kind of expression"; the next strategy gets a turn.
type resolverFunc func(text string, env parseEnv) (time.Time, bool)

// Strategies in order from most to least specific.
var resolvers = []struct {
	name string
	fn   resolverFunc
}{
	{"iso", resolveISO},
	{"literal", resolveLiteral},
	{"weekday", resolveWeekday},
	{"month", resolveMonth},
	{"delegate", resolveDelegate},
}

// Parse resolves a natural language or ISO date expression to a single
// timezone-aware instant. It returns false when the text is empty or no
// strategy recognizes it.
func Parse(text string, opts Options) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}

	dir := opts.Direction
	if dir == DirectionAuto {
		dir = DetectDirection(text)
	}

	loc := resolveLocation(opts.Timezone)
	now := opts.Base
	if now.IsZero() {
		now = time.Now().In(loc)
	}

	env := parseEnv{loc: loc, now: now, future: dir != DirectionPast}
	for _, r := range resolvers {
		if t, ok := r.fn(text, env); ok {
			return applyEndOfDay(t, opts.EndOfDay), true
		}
	}
	return time.Time{}, false
}

// resolveLocation loads an IANA zone, falling back to UTC for empty or
// unknown names. Unknown names are logged, never surfaced as errors.
func resolveLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("invalid timezone, falling back to UTC",
			logging.Timezone(name), logging.Err(err))
		return time.UTC
	}
	return loc
}

// resolveLiteral handles fixed idioms the general delegate gets wrong.
func resolveLiteral(text string, env parseEnv) (time.Time, bool) {
	switch strings.ToLower(text) {
	case "day before yesterday":
		return env.now.AddDate(0, 0, -2), true
	case "day after tomorrow":
		return env.now.AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

// applyEndOfDay rewrites an exact midnight to 23:59:59 of the same date.
// Instants with an explicit time of day are left alone.
func applyEndOfDay(t time.Time, endOfDay bool) time.Time {
	if endOfDay && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	}
	return t
}

// startOfDay returns midnight of t's calendar date.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay returns 23:59:59 of t's calendar date.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// daysBetween returns the signed calendar-date difference to - from,
// independent of clock times and DST transitions.
func daysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	in := to.In(from.Location())
	t := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// sameDate reports whether a and b fall on the same calendar date, viewed
// in a's location.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
