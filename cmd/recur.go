package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/naturaltime/internal/schedule"
	"github.com/teemow/naturaltime/internal/temporal"
)

func newRecurCmd() *cobra.Command {
	var startFlag string
	var occurrences int

	cmd := &cobra.Command{
		Use:   "recur <phrase>",
		Short: "Parse a recurrence phrase and render it as an RRULE",
		Long: `Parse a natural language recurrence phrase ("every weekday", "biweekly",
"daily for 2 weeks", "weekly until march") into a structured rule and the
equivalent iCalendar RRULE property.

The rule is anchored at --start (default: the reference instant), and the
first occurrences can be listed with --occurrences.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := baseOptions()
			if err != nil {
				return err
			}

			phrase := strings.Join(args, " ")
			started := time.Now()
			rec := temporal.ParseRecurrence(phrase, opts)
			recordParse(cmd.Context(), "recur", rec != nil, time.Since(started))
			if rec == nil {
				return fmt.Errorf("could not interpret recurrence %q", phrase)
			}

			start := opts.Base
			if startFlag != "" {
				start, err = time.Parse(time.RFC3339, startFlag)
				if err != nil {
					return fmt.Errorf("invalid --start %q: %w", startFlag, err)
				}
			}
			if start.IsZero() {
				start = time.Now().UTC()
			}

			encoded, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))

			rule, err := schedule.RRuleString(rec, start)
			if err != nil {
				return fmt.Errorf("failed to build RRULE: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), rule)

			if occurrences > 0 {
				times, err := schedule.Occurrences(rec, start, occurrences)
				if err != nil {
					return err
				}
				for _, t := range times {
					fmt.Fprintln(cmd.OutOrStdout(), t.Format(time.RFC3339))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "rule anchor in RFC3339 form (default: reference instant)")
	cmd.Flags().IntVar(&occurrences, "occurrences", 0, "also list the first N occurrences")

	return cmd
}
