package instrumentation

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestToolInvocation_Complete(t *testing.T) {
	ti := NewToolInvocation("sync_to_calendar")
	ti.WithService(ServiceCalendar, "sync")

	time.Sleep(time.Millisecond)
	ti.Complete(true, nil)

	if !ti.Success {
		t.Error("Expected success")
	}
	if ti.Duration <= 0 {
		t.Error("Expected positive duration")
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("Expected status success, got %s", ti.Status())
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation("create_calendar_event")
	ti.Complete(false, errors.New("calendar API returned status 403"))

	if ti.Success {
		t.Error("Expected failure")
	}
	if ti.Error != "calendar API returned status 403" {
		t.Errorf("Expected error captured, got %q", ti.Error)
	}
	if ti.Status() != StatusError {
		t.Errorf("Expected status error, got %s", ti.Status())
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)

	ti := NewToolInvocation("get_canvas_assignments").
		WithService(ServiceCanvas, OperationFetch).
		Complete(true, nil)
	audit.LogToolInvocation(ti)

	output := buf.String()
	if !strings.Contains(output, "tool_executed") {
		t.Errorf("Expected tool_executed message, got: %s", output)
	}
	if !strings.Contains(output, "get_canvas_assignments") {
		t.Errorf("Expected tool name in output, got: %s", output)
	}
	if !strings.Contains(output, ServiceCanvas) {
		t.Errorf("Expected service in output, got: %s", output)
	}
}

func TestAuditLogger_FailureLogsWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)

	ti := NewToolInvocation("delete_calendar_event").
		Complete(false, errors.New("event not found"))
	audit.LogToolInvocation(ti)

	output := buf.String()
	if !strings.Contains(output, "tool_failed") {
		t.Errorf("Expected tool_failed message, got: %s", output)
	}
	if !strings.Contains(output, "event not found") {
		t.Errorf("Expected error in output, got: %s", output)
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	audit := NewAuditLogger(logger)
	audit.SetEnabled(false)

	ti := NewToolInvocation("list_calendar_events").Complete(true, nil)
	audit.LogToolInvocation(ti)

	if buf.Len() != 0 {
		t.Errorf("Expected no output when disabled, got: %s", buf.String())
	}
}
