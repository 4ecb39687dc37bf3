package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/naturaltime/internal/temporal"
)

func newRangeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "range <expression> | range <start> <end>",
		Short: "Resolve a week range phrase or a start/end expression pair",
		Long: `With one argument, resolve a relative range phrase ("this week",
"past 7 days", "next 2 weeks") against the business week (Monday through
Friday).

With two arguments, resolve a start and an end expression independently;
date-only end expressions resolve to end of day, and an end that lands
before the start on a different date is pushed forward a week.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := baseOptions()
			if err != nil {
				return err
			}

			var resolved temporal.Range
			started := time.Now()
			if len(args) == 1 {
				r, ok := temporal.ParseWeekRange(args[0], opts)
				recordParse(cmd.Context(), "range", ok, time.Since(started))
				if !ok {
					return fmt.Errorf("%q is not a range expression. %s", args[0], temporal.ParseHint)
				}
				resolved = r
			} else {
				resolved = temporal.ParseDateRange(args[0], args[1], opts)
				ok := !resolved.Start.IsZero() && !resolved.End.IsZero()
				recordParse(cmd.Context(), "range", ok, time.Since(started))
				if resolved.Start.IsZero() {
					return fmt.Errorf("could not interpret start %q. %s", args[0], temporal.ParseHint)
				}
				if resolved.End.IsZero() {
					return fmt.Errorf("could not interpret end %q. %s", args[1], temporal.ParseHint)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolved.Start.Format(time.RFC3339))
			fmt.Fprintln(cmd.OutOrStdout(), resolved.End.Format(time.RFC3339))
			return nil
		},
	}

	return cmd
}
