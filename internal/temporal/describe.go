package temporal

import (
	"fmt"
	"time"
)

// DescribeRelative renders t as a human-readable phrase relative to base:
// "today", "tomorrow", "day before yesterday", "this Friday", "in 12 days"
// and so on. A zero base means the current time in t's location.
func DescribeRelative(t, base time.Time) string {
	if base.IsZero() {
		base = time.Now().In(t.Location())
	}

	days := daysBetween(base, t)
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days == 2:
		return "day after tomorrow"
	case days == -2:
		return "day before yesterday"
	case days > 2 && days <= 7:
		return "this " + t.Weekday().String()
	case days >= -7 && days < -2:
		return "last " + t.Weekday().String()
	case days > 7:
		return fmt.Sprintf("in %d days", days)
	case days < -7:
		return fmt.Sprintf("%d days ago", -days)
	}
	return fmt.Sprintf("in %d days", days)
}
