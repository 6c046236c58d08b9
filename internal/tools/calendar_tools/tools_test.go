package calendar_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"canvascal/internal/config"
	"canvascal/internal/google"
	"canvascal/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	// No refresh token: calendar tools should fail with a clear message
	// before any network call.
	sc, err := server.NewServerContext(context.Background(), &config.Config{
		Canvas: config.Canvas{BaseURL: "https://school.instructure.com", Token: "tok"},
		Google: google.Config{ClientID: "id", ClientSecret: "secret"},
	}, nil)
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func requestWithArgs(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if len(result.Content) == 0 {
		t.Fatal("Expected result content")
	}
	text, ok := mcp.AsTextContent(result.Content[0])
	if !ok {
		t.Fatalf("Expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func TestHandleCreateEvent_ArgumentValidation(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name    string
		args    map[string]any
		wantMsg string
	}{
		{"missing title", map[string]any{
			"startTime": "2025-11-07T23:59:59", "endTime": "2025-11-08T00:59:59",
		}, "title is required"},
		{"missing startTime", map[string]any{
			"title": "HW", "endTime": "2025-11-08T00:59:59",
		}, "startTime is required"},
		{"missing endTime", map[string]any{
			"title": "HW", "startTime": "2025-11-07T23:59:59",
		}, "endTime is required"},
		{"bad startTime format", map[string]any{
			"title": "HW", "startTime": "tomorrow", "endTime": "2025-11-08T00:59:59",
		}, "Invalid startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := handleCreateEvent(context.Background(), requestWithArgs(tt.args), sc)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if !result.IsError {
				t.Fatal("Expected error result")
			}
			if !strings.Contains(resultText(t, result), tt.wantMsg) {
				t.Errorf("Expected %q in message, got: %s", tt.wantMsg, resultText(t, result))
			}
		})
	}
}

func TestHandleCreateEvent_FailsWithoutRefreshToken(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleCreateEvent(context.Background(), requestWithArgs(map[string]any{
		"title":     "HW",
		"startTime": "2025-11-07T23:59:59",
		"endTime":   "2025-11-08T00:59:59",
	}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result without refresh token")
	}
	if !strings.Contains(resultText(t, result), "refresh token") {
		t.Errorf("Expected refresh-token hint, got: %s", resultText(t, result))
	}
}

func TestHandleListEvents_ArgumentValidation(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleListEvents(context.Background(), requestWithArgs(map[string]any{
		"daysAhead": float64(-1),
	}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for negative daysAhead")
	}

	result, err = handleListEvents(context.Background(), requestWithArgs(map[string]any{
		"maxResults": float64(0),
	}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for zero maxResults")
	}
}

func TestHandleGetEvent_RequiresEventID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleGetEvent(context.Background(), requestWithArgs(map[string]any{}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing eventId")
	}
	if !strings.Contains(resultText(t, result), "eventId is required") {
		t.Errorf("Unexpected message: %s", resultText(t, result))
	}
}

func TestHandleUpdateEvent_RequiresSomeField(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleUpdateEvent(context.Background(), requestWithArgs(map[string]any{
		"eventId": "evt-1",
	}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for empty patch")
	}
	if !strings.Contains(resultText(t, result), "at least one field") {
		t.Errorf("Unexpected message: %s", resultText(t, result))
	}
}

func TestHandleDeleteEvent_RequiresEventID(t *testing.T) {
	sc := newTestServerContext(t)

	result, err := handleDeleteEvent(context.Background(), requestWithArgs(map[string]any{}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing eventId")
	}
}

func TestValidateDateTime(t *testing.T) {
	if err := validateDateTime("2025-11-07T23:59:59"); err != nil {
		t.Errorf("Expected wall-clock format accepted, got: %v", err)
	}
	if err := validateDateTime("2025-11-07T23:59:59Z"); err == nil {
		t.Error("Expected offset-carrying value rejected")
	}
	if err := validateDateTime("November 7"); err == nil {
		t.Error("Expected prose date rejected")
	}
}

func TestIntArg(t *testing.T) {
	args := map[string]any{"daysAhead": float64(14)}

	if got := intArg(args, "daysAhead", 7); got != 14 {
		t.Errorf("Expected 14, got %d", got)
	}
	if got := intArg(args, "missing", 7); got != 7 {
		t.Errorf("Expected fallback 7, got %d", got)
	}
}
