package temporal

import (
	"regexp"
	"time"
)

var (
	isoDateRe     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	isoDateTimeRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}(:\d{2})?(\.\d+)?(Z|[+-]\d{2}:?\d{2})?$`)
)

// Layouts carrying their own offset; tried before the naive layouts so an
// explicit offset always wins over the resolved zone.
var isoOffsetLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04-0700",
}

var isoNaiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// resolveISO is the fast path for strict ISO-8601 dates and datetimes.
// Naive values are attributed the resolved zone.
func resolveISO(text string, env parseEnv) (time.Time, bool) {
	if isoDateRe.MatchString(text) {
		if t, err := time.ParseInLocation("2006-01-02", text, env.loc); err == nil {
			return t, true
		}
		return time.Time{}, false
	}

	if !isoDateTimeRe.MatchString(text) {
		return time.Time{}, false
	}
	for _, layout := range isoOffsetLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	for _, layout := range isoNaiveLayouts {
		if t, err := time.ParseInLocation(layout, text, env.loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
