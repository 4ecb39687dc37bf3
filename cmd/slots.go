package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/naturaltime/internal/schedule"
	"github.com/teemow/naturaltime/internal/temporal"
)

func newSlotsCmd() *cobra.Command {
	var fromExpr, toExpr, hoursExpr, durationExpr string
	var busyFlags []string

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Find available meeting slots within a resolved window",
		Long: `Resolve a scheduling window from natural language and list the free
slots inside it, avoiding the given busy intervals.

Every temporal input is free text: the window ("tomorrow" to "next
friday", or "this week" for both sides), the working hours ("9am-5pm")
and the meeting duration ("1.5 hours"). Busy intervals are RFC3339
pairs separated by a slash and may be repeated:

  naturaltime slots --from "this week" --to "this week" \
      --duration "1 hour" --busy "2026-01-20T10:00:00Z/2026-01-20T11:00:00Z"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := baseOptions()
			if err != nil {
				return err
			}

			window := temporal.ParseDateRange(fromExpr, toExpr, opts)
			if window.Start.IsZero() {
				return fmt.Errorf("could not interpret --from %q. %s", fromExpr, temporal.ParseHint)
			}
			if window.End.IsZero() {
				return fmt.Errorf("could not interpret --to %q. %s", toExpr, temporal.ParseHint)
			}

			busy, err := parseBusyIntervals(busyFlags)
			if err != nil {
				return err
			}

			hours := temporal.ParseWorkingHours(hoursExpr)
			duration := time.Duration(temporal.ParseDuration(durationExpr)) * time.Minute

			slots := schedule.FindAvailableSlots(busy, duration, window, hours)
			if len(slots) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no available slots")
				return nil
			}
			for _, slot := range slots {
				fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n",
					slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromExpr, "from", "this week", "window start expression")
	cmd.Flags().StringVar(&toExpr, "to", "this week", "window end expression")
	cmd.Flags().StringVar(&hoursExpr, "hours", "9-17", "working hours, e.g. \"9am-5pm\"")
	cmd.Flags().StringVar(&durationExpr, "duration", "1 hour", "meeting duration, e.g. \"30 minutes\"")
	cmd.Flags().StringArrayVar(&busyFlags, "busy", nil, "busy interval as RFC3339 start/end pair (repeatable)")

	return cmd
}

// parseBusyIntervals parses repeated "start/end" RFC3339 pairs.
func parseBusyIntervals(values []string) ([]schedule.Interval, error) {
	var busy []schedule.Interval
	for _, value := range values {
		parts := strings.SplitN(value, "/", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid busy interval %q: expected start/end", value)
		}
		start, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid busy interval start %q: %w", parts[0], err)
		}
		end, err := time.Parse(time.RFC3339, strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid busy interval end %q: %w", parts[1], err)
		}
		if !end.After(start) {
			return nil, fmt.Errorf("invalid busy interval %q: end is not after start", value)
		}
		busy = append(busy, schedule.Interval{Start: start, End: end})
	}
	return busy, nil
}
