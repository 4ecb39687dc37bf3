// Package instrumentation provides OpenTelemetry metrics for naturaltime.
//
// The parser library itself is pure and performs no instrumentation; the
// command layer records one metric event per resolution through this
// package. A stdout exporter can be installed for ad-hoc inspection; when
// no meter provider is configured, recording is a no-op through the
// default provider.
package instrumentation
