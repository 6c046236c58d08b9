package instrumentation

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric attribute keys.
const (
	attrStatus    = "status"
	attrOperation = "operation"
	attrService   = "service"
	attrTool      = "tool"
	attrResult    = "result"
)

// Metrics provides methods for recording observability metrics.
// The zero value is a no-op recorder; every method guards against
// uninitialized instruments.
type Metrics struct {
	// MCP tool metrics
	toolInvocationsTotal metric.Int64Counter
	toolDuration         metric.Float64Histogram

	// Upstream API metrics (Canvas and Google Calendar)
	apiOperationsTotal   metric.Int64Counter
	apiOperationDuration metric.Float64Histogram

	// Sync metrics
	syncRunsTotal  metric.Int64Counter
	syncItemsTotal metric.Int64Counter
	syncDuration   metric.Float64Histogram
}

// NewMetrics creates a new Metrics instance with all instruments initialized.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	m := &Metrics{}

	var err error

	m.toolInvocationsTotal, err = meter.Int64Counter(
		"mcp_tool_invocations_total",
		metric.WithDescription("Total number of MCP tool invocations"),
		metric.WithUnit("{invocation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_invocations_total counter: %w", err)
	}

	m.toolDuration, err = meter.Float64Histogram(
		"mcp_tool_duration_seconds",
		metric.WithDescription("MCP tool execution duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mcp_tool_duration_seconds histogram: %w", err)
	}

	m.apiOperationsTotal, err = meter.Int64Counter(
		"api_operations_total",
		metric.WithDescription("Total number of upstream API operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operations_total counter: %w", err)
	}

	m.apiOperationDuration, err = meter.Float64Histogram(
		"api_operation_duration_seconds",
		metric.WithDescription("Upstream API operation duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create api_operation_duration_seconds histogram: %w", err)
	}

	m.syncRunsTotal, err = meter.Int64Counter(
		"sync_runs_total",
		metric.WithDescription("Total number of sync runs"),
		metric.WithUnit("{run}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync_runs_total counter: %w", err)
	}

	m.syncItemsTotal, err = meter.Int64Counter(
		"sync_items_total",
		metric.WithDescription("Total number of assignments considered by sync runs"),
		metric.WithUnit("{item}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync_items_total counter: %w", err)
	}

	m.syncDuration, err = meter.Float64Histogram(
		"sync_duration_seconds",
		metric.WithDescription("Sync run duration in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync_duration_seconds histogram: %w", err)
	}

	return m, nil
}

// RecordToolInvocation records an MCP tool invocation with tool name,
// status ("success" or "error"), and duration.
func (m *Metrics) RecordToolInvocation(ctx context.Context, toolName, status string, duration time.Duration) {
	if m.toolInvocationsTotal == nil || m.toolDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrTool, toolName),
		attribute.String(attrStatus, status),
	}

	m.toolInvocationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.toolDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordAPIOperation records an upstream API call.
//
// Parameters:
//   - service: upstream name ("canvas" or "calendar")
//   - operation: operation type (list, get, create, update, delete, fetch)
//   - status: result status ("success" or "error")
//   - duration: time taken for the operation
func (m *Metrics) RecordAPIOperation(ctx context.Context, service, operation, status string, duration time.Duration) {
	if m.apiOperationsTotal == nil || m.apiOperationDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(attrService, service),
		attribute.String(attrOperation, operation),
		attribute.String(attrStatus, status),
	}

	m.apiOperationsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.apiOperationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordSyncRun records the outcome of one sync run: its overall status,
// the per-item synced/skipped split, and the run duration.
func (m *Metrics) RecordSyncRun(ctx context.Context, status string, synced, skipped int, duration time.Duration) {
	if m.syncRunsTotal == nil || m.syncItemsTotal == nil || m.syncDuration == nil {
		return
	}

	m.syncRunsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrStatus, status)))
	m.syncItemsTotal.Add(ctx, int64(synced), metric.WithAttributes(attribute.String(attrResult, SyncResultSynced)))
	m.syncItemsTotal.Add(ctx, int64(skipped), metric.WithAttributes(attribute.String(attrResult, SyncResultSkipped)))
	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attribute.String(attrStatus, status)))
}
