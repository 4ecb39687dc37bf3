package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/naturaltime/internal/temporal"
)

func newParseCmd() *cobra.Command {
	var preferFuture, preferPast, endOfDay, describe bool

	cmd := &cobra.Command{
		Use:   "parse <expression>",
		Short: "Resolve a natural language expression to a single instant",
		Long: `Resolve a free-text temporal expression ("tomorrow at 2pm", "next monday",
"in 3 days", "2026-01-20") to a single timezone-aware instant, printed in
RFC3339 form.

Ambiguous relative expressions resolve toward the future unless the text
itself indicates otherwise; --past and --future override the detection.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if preferFuture && preferPast {
				return fmt.Errorf("--future and --past are mutually exclusive")
			}

			opts, err := baseOptions()
			if err != nil {
				return err
			}
			if preferFuture {
				opts.Direction = temporal.DirectionFuture
			}
			if preferPast {
				opts.Direction = temporal.DirectionPast
			}
			opts.EndOfDay = endOfDay

			expression := strings.Join(args, " ")
			started := time.Now()
			resolved, ok := temporal.Parse(expression, opts)
			recordParse(cmd.Context(), "parse", ok, time.Since(started))
			if !ok {
				return fmt.Errorf("could not interpret %q. %s", expression, temporal.ParseHint)
			}

			fmt.Fprintln(cmd.OutOrStdout(), resolved.Format(time.RFC3339))
			if describe {
				base := opts.Base
				if base.IsZero() {
					base = time.Now().In(resolved.Location())
				}
				fmt.Fprintln(cmd.OutOrStdout(), temporal.DescribeRelative(resolved, base))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&preferFuture, "future", false, "prefer future dates for ambiguous expressions")
	cmd.Flags().BoolVar(&preferPast, "past", false, "prefer past dates for ambiguous expressions")
	cmd.Flags().BoolVar(&endOfDay, "end-of-day", false, "resolve date-only input to 23:59:59")
	cmd.Flags().BoolVar(&describe, "describe", false, "also print a relative description of the result")

	return cmd
}
