// Package instrumentation provides OpenTelemetry metrics and tracing for
// the canvascal server.
//
// Metrics cover three layers: MCP tool invocations, outbound API calls to
// Canvas and Google Calendar, and sync run outcomes. The default exporter
// is Prometheus, served on a dedicated port by the metrics server;
// OTLP and stdout exporters are available for collector-based setups and
// local debugging.
//
// Tracing is off by default. Enable it with TRACING_EXPORTER=otlp and an
// OTLP endpoint, or TRACING_EXPORTER=stdout for development.
//
// Everything degrades to no-ops when INSTRUMENTATION_ENABLED=false, so
// callers never need to guard their recording calls.
package instrumentation
