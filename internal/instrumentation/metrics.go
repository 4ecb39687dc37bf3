package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/teemow/naturaltime"

// Attribute keys, kept low-cardinality (operation names, not expressions).
const (
	attrOperation = "operation"
	attrStatus    = "status"
)

// Metrics holds the instruments for parse operations.
type Metrics struct {
	parseTotal    metric.Int64Counter
	parseFailures metric.Int64Counter
	parseDuration metric.Float64Histogram
}

// NewMetrics creates the parse instruments on the global meter provider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)
	m := &Metrics{}

	var err error
	m.parseTotal, err = meter.Int64Counter(
		"naturaltime_parse_total",
		metric.WithDescription("Total number of parse operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create naturaltime_parse_total counter: %w", err)
	}

	m.parseFailures, err = meter.Int64Counter(
		"naturaltime_parse_failures_total",
		metric.WithDescription("Total number of parse operations that produced no result"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create naturaltime_parse_failures_total counter: %w", err)
	}

	m.parseDuration, err = meter.Float64Histogram(
		"naturaltime_parse_duration_seconds",
		metric.WithDescription("Parse operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create naturaltime_parse_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordParse records one parse operation with its outcome and duration.
func (m *Metrics) RecordParse(ctx context.Context, operation string, success bool, duration time.Duration) {
	if m == nil || m.parseTotal == nil {
		return // Instrumentation not initialized
	}

	status := "success"
	if !success {
		status = "error"
	}
	attrs := []attribute.KeyValue{
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.parseTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	if !success {
		m.parseFailures.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrOperation, operation)))
	}
	m.parseDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}
