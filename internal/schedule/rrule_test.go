package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/naturaltime/internal/temporal"
)

var anchor = time.Date(2026, 1, 19, 9, 0, 0, 0, time.UTC) // a Monday

func TestRRuleString(t *testing.T) {
	tests := []struct {
		name string
		rec  *temporal.Recurrence
		want []string
	}{
		{
			name: "daily",
			rec:  &temporal.Recurrence{Frequency: temporal.FreqDaily, Interval: 1},
			want: []string{"FREQ=DAILY"},
		},
		{
			name: "biweekly",
			rec:  &temporal.Recurrence{Frequency: temporal.FreqWeekly, Interval: 2},
			want: []string{"FREQ=WEEKLY", "INTERVAL=2"},
		},
		{
			name: "weekdays",
			rec: &temporal.Recurrence{
				Frequency: temporal.FreqWeekly,
				Interval:  1,
				ByDay:     []string{"MO", "TU", "WE", "TH", "FR"},
			},
			want: []string{"FREQ=WEEKLY", "BYDAY=MO,TU,WE,TH,FR"},
		},
		{
			name: "bounded by count",
			rec:  &temporal.Recurrence{Frequency: temporal.FreqDaily, Interval: 1, Count: 10},
			want: []string{"FREQ=DAILY", "COUNT=10"},
		},
		{
			name: "bounded by until",
			rec:  &temporal.Recurrence{Frequency: temporal.FreqWeekly, Interval: 1, Until: "2026-03-01"},
			want: []string{"FREQ=WEEKLY", "UNTIL="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RRuleString(tt.rec, anchor)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(got, "RRULE:"), "missing RRULE prefix: %s", got)
			for _, part := range tt.want {
				assert.Contains(t, got, part)
			}
		})
	}
}

func TestRRuleErrors(t *testing.T) {
	_, err := RRule(nil, anchor)
	assert.Error(t, err)

	_, err = RRule(&temporal.Recurrence{Frequency: "HOURLY", Interval: 1}, anchor)
	assert.Error(t, err)

	_, err = RRule(&temporal.Recurrence{
		Frequency: temporal.FreqWeekly,
		Interval:  1,
		ByDay:     []string{"XX"},
	}, anchor)
	assert.Error(t, err)

	_, err = RRule(&temporal.Recurrence{
		Frequency: temporal.FreqDaily,
		Interval:  1,
		Until:     "march",
	}, anchor)
	assert.Error(t, err)
}

func TestOccurrencesCount(t *testing.T) {
	rec := &temporal.Recurrence{Frequency: temporal.FreqDaily, Interval: 1, Count: 3}
	got, err := Occurrences(rec, anchor, 10)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i := 0; i < 3; i++ {
		assert.True(t, got[i].Equal(anchor.AddDate(0, 0, i)),
			"occurrence %d = %v, want %v", i, got[i], anchor.AddDate(0, 0, i))
	}
}

func TestOccurrencesUnboundedCapped(t *testing.T) {
	rec := &temporal.Recurrence{Frequency: temporal.FreqWeekly, Interval: 1}
	got, err := Occurrences(rec, anchor, 4)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, occ := range got {
		assert.True(t, occ.Equal(anchor.AddDate(0, 0, 7*i)),
			"occurrence %d = %v, want %v", i, occ, anchor.AddDate(0, 0, 7*i))
	}
}

func TestOccurrencesByDay(t *testing.T) {
	rec := &temporal.Recurrence{
		Frequency: temporal.FreqWeekly,
		Interval:  1,
		ByDay:     []string{"MO", "WE", "FR"},
	}
	got, err := Occurrences(rec, anchor, 5)
	require.NoError(t, err)
	require.Len(t, got, 5)

	want := []time.Time{
		anchor,                  // Mon Jan 19
		anchor.AddDate(0, 0, 2), // Wed Jan 21
		anchor.AddDate(0, 0, 4), // Fri Jan 23
		anchor.AddDate(0, 0, 7), // Mon Jan 26
		anchor.AddDate(0, 0, 9), // Wed Jan 28
	}
	for i := range want {
		assert.True(t, got[i].Equal(want[i]), "occurrence %d = %v, want %v", i, got[i], want[i])
	}
}

func TestOccurrencesUntilInclusive(t *testing.T) {
	rec := &temporal.Recurrence{
		Frequency: temporal.FreqDaily,
		Interval:  1,
		Until:     "2026-01-21",
	}
	got, err := Occurrences(rec, anchor, 10)
	require.NoError(t, err)
	// The whole until date counts, so the 09:00 occurrence on the 21st is
	// included.
	require.Len(t, got, 3)
	assert.True(t, got[2].Equal(anchor.AddDate(0, 0, 2)),
		"last occurrence = %v, want %v", got[2], anchor.AddDate(0, 0, 2))
}
