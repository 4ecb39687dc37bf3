package schedule

import (
	"time"
)

// Interval is a busy period within a scheduling window.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Slot is a free period long enough to hold a meeting of the requested
// duration.
type Slot struct {
	Start    time.Time     `json:"start"`
	End      time.Time     `json:"end"`
	Duration time.Duration `json:"duration"`
}
