package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/naturaltime/internal/instrumentation"
	"github.com/teemow/naturaltime/internal/temporal"
)

// rootCmd represents the base command for the naturaltime application
var rootCmd = &cobra.Command{
	Use:   "naturaltime",
	Short: "Resolves natural language date, range and recurrence expressions",
	Long: `naturaltime turns free-text temporal expressions like "next monday at 10am",
"past 7 days" or "every weekday until march" into precise, timezone-aware
datetimes, date ranges and recurrence rules.

It is the command line surface of the parser library used by calendar and
email assistant tooling.`,
	SilenceUsage: true,
}

var (
	timezoneFlag string
	baseFlag     string
	metricsFlag  bool

	metricsShutdown func(context.Context) error
)

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "naturaltime version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&timezoneFlag, "timezone", "t", "",
		"IANA timezone for resolution (default UTC)")
	rootCmd.PersistentFlags().StringVar(&baseFlag, "base", "",
		"reference instant in RFC3339 form (default: current time)")
	rootCmd.PersistentFlags().BoolVar(&metricsFlag, "metrics", false,
		"emit OpenTelemetry metrics to stdout on exit")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !metricsFlag {
			return nil
		}
		shutdown, err := instrumentation.SetupStdoutMetrics(cmd.Context(), version, time.Minute)
		if err != nil {
			return fmt.Errorf("failed to set up metrics: %w", err)
		}
		metricsShutdown = shutdown
		return nil
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if metricsShutdown == nil {
			return nil
		}
		return metricsShutdown(cmd.Context())
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newRangeCmd())
	rootCmd.AddCommand(newRecurCmd())
	rootCmd.AddCommand(newSlotsCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// baseOptions builds the shared parse options from the persistent flags.
func baseOptions() (temporal.Options, error) {
	opts := temporal.Options{Timezone: timezoneFlag}
	if baseFlag != "" {
		base, err := time.Parse(time.RFC3339, baseFlag)
		if err != nil {
			return opts, fmt.Errorf("invalid --base %q: %w", baseFlag, err)
		}
		opts.Base = base
	}
	return opts, nil
}

// parseMetrics lazily initializes the shared metrics instruments. A nil
// result is fine; recording on nil is a no-op.
var parseMetrics *instrumentation.Metrics

func recordParse(ctx context.Context, operation string, success bool, elapsed time.Duration) {
	if parseMetrics == nil {
		m, err := instrumentation.NewMetrics()
		if err != nil {
			return
		}
		parseMetrics = m
	}
	parseMetrics.RecordParse(ctx, operation, success, elapsed)
}
