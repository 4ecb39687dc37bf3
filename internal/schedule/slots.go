package schedule

import (
	"time"

	"github.com/teemow/naturaltime/internal/temporal"
)

// Candidate slots advance in 15 minute increments.
const slotStep = 15 * time.Minute

// FindAvailableSlots finds free periods of the given duration inside the
// window, avoiding the supplied busy intervals. Candidates are confined to
// the working hours and to business days; a slot must start and end within
// the same working day.
func FindAvailableSlots(busy []Interval, duration time.Duration, window temporal.Range, hours temporal.WorkingHours) []Slot {
	if duration <= 0 || window.Start.IsZero() || window.End.IsZero() || !window.End.After(window.Start) {
		return nil
	}

	var slots []Slot
	current := window.Start
	for !current.Add(duration).After(window.End) {
		dayStart := time.Date(current.Year(), current.Month(), current.Day(),
			hours.Start, 0, 0, 0, current.Location())
		dayEnd := time.Date(current.Year(), current.Month(), current.Day(),
			hours.End, 0, 0, 0, current.Location())

		if current.Weekday() == time.Saturday || current.Weekday() == time.Sunday {
			current = nextWorkingDayStart(current, hours)
			continue
		}
		if current.Before(dayStart) {
			current = dayStart
			continue
		}

		slotEnd := current.Add(duration)
		if slotEnd.After(dayEnd) {
			current = nextWorkingDayStart(current, hours)
			continue
		}

		if conflict, ok := firstConflict(busy, current, slotEnd); ok {
			// Resume at the end of the conflicting busy period.
			if conflict.End.After(current) {
				current = conflict.End
			} else {
				current = current.Add(slotStep)
			}
			continue
		}

		slots = append(slots, Slot{Start: current, End: slotEnd, Duration: duration})
		current = current.Add(slotStep)
	}

	return slots
}

func nextWorkingDayStart(t time.Time, hours temporal.WorkingHours) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), hours.Start, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
	for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func firstConflict(busy []Interval, start, end time.Time) (Interval, bool) {
	for _, b := range busy {
		if start.Before(b.End) && end.After(b.Start) {
			return b, true
		}
	}
	return Interval{}, false
}
