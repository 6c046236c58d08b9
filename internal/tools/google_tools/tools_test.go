package google_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"canvascal/internal/config"
	"canvascal/internal/google"
	"canvascal/internal/server"
)

func newTestServerContext(t *testing.T, googleCfg google.Config) *server.ServerContext {
	t.Helper()

	sc, err := server.NewServerContext(context.Background(), &config.Config{
		Canvas: config.Canvas{BaseURL: "https://school.instructure.com", Token: "tok"},
		Google: googleCfg,
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

func TestHandleGetAuthURL(t *testing.T) {
	sc := newTestServerContext(t, google.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})

	result, err := handleGetAuthURL(context.Background(), mcp.CallToolRequest{}, sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("Unexpected error result: %s", resultText(t, result))
	}

	text := resultText(t, result)
	if !strings.Contains(text, "accounts.google.com") {
		t.Errorf("Expected Google authorization URL, got: %s", text)
	}
	if !strings.Contains(text, "access_type=offline") {
		t.Errorf("Expected offline access requested, got: %s", text)
	}
	if !strings.Contains(text, "set_google_auth_code") {
		t.Errorf("Expected follow-up instruction, got: %s", text)
	}
}

func TestHandleGetAuthURL_Unconfigured(t *testing.T) {
	sc := newTestServerContext(t, google.Config{})

	result, err := handleGetAuthURL(context.Background(), mcp.CallToolRequest{}, sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result without OAuth credentials")
	}
	if !strings.Contains(resultText(t, result), "GOOGLE_CLIENT_ID") {
		t.Errorf("Expected configuration hint, got: %s", resultText(t, result))
	}
}

func TestHandleSetAuthCode_RequiresCode(t *testing.T) {
	sc := newTestServerContext(t, google.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
	})

	result, err := handleSetAuthCode(context.Background(), requestWithArgs(map[string]any{}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result for missing code")
	}
	if !strings.Contains(resultText(t, result), "code is required") {
		t.Errorf("Expected required-argument message, got: %s", resultText(t, result))
	}
}

func TestHandleSetAuthCode_Unconfigured(t *testing.T) {
	sc := newTestServerContext(t, google.Config{})

	result, err := handleSetAuthCode(context.Background(), requestWithArgs(map[string]any{"code": "abc"}), sc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("Expected error result without OAuth credentials")
	}
}
