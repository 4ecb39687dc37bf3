package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/teemow/naturaltime/internal/temporal"
)

var rruleFrequencies = map[temporal.Frequency]rrule.Frequency{
	temporal.FreqDaily:   rrule.DAILY,
	temporal.FreqWeekly:  rrule.WEEKLY,
	temporal.FreqMonthly: rrule.MONTHLY,
	temporal.FreqYearly:  rrule.YEARLY,
}

var rruleWeekdays = map[string]rrule.Weekday{
	"MO": rrule.MO,
	"TU": rrule.TU,
	"WE": rrule.WE,
	"TH": rrule.TH,
	"FR": rrule.FR,
	"SA": rrule.SA,
	"SU": rrule.SU,
}

// RRule converts a parsed recurrence into an iCalendar recurrence rule
// anchored at start.
func RRule(rec *temporal.Recurrence, start time.Time) (*rrule.RRule, error) {
	if rec == nil {
		return nil, fmt.Errorf("recurrence is nil")
	}
	freq, ok := rruleFrequencies[rec.Frequency]
	if !ok {
		return nil, fmt.Errorf("unsupported frequency %q", rec.Frequency)
	}

	opt := rrule.ROption{
		Freq:     freq,
		Interval: rec.Interval,
		Dtstart:  start,
		Count:    rec.Count,
	}
	for _, code := range rec.ByDay {
		wd, ok := rruleWeekdays[code]
		if !ok {
			return nil, fmt.Errorf("unknown weekday code %q", code)
		}
		opt.Byweekday = append(opt.Byweekday, wd)
	}
	if rec.Until != "" {
		until, err := time.ParseInLocation("2006-01-02", rec.Until, start.Location())
		if err != nil {
			return nil, fmt.Errorf("invalid until date %q: %w", rec.Until, err)
		}
		// Inclusive through the whole until date.
		opt.Until = until.AddDate(0, 0, 1).Add(-time.Second)
	}

	return rrule.NewRRule(opt)
}

// RRuleString renders a parsed recurrence as an "RRULE:" property value,
// the form calendar event payloads expect.
func RRuleString(rec *temporal.Recurrence, start time.Time) (string, error) {
	r, err := RRule(rec, start)
	if err != nil {
		return "", err
	}
	return "RRULE:" + r.String(), nil
}

// Occurrences expands a parsed recurrence into its first occurrences,
// capped at max since rules without a count or until bound never end.
func Occurrences(rec *temporal.Recurrence, start time.Time, max int) ([]time.Time, error) {
	r, err := RRule(rec, start)
	if err != nil {
		return nil, err
	}

	next := r.Iterator()
	var out []time.Time
	for len(out) < max {
		t, ok := next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out, nil
}
