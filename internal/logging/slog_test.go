package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestWithHelpers(t *testing.T) {
	tests := []struct {
		name string
		with func(*slog.Logger) *slog.Logger
		want string
	}{
		{"operation", func(l *slog.Logger) *slog.Logger { return WithOperation(l, "sync") }, "operation=sync"},
		{"service", func(l *slog.Logger) *slog.Logger { return WithService(l, "canvas") }, "service=canvas"},
		{"tool", func(l *slog.Logger) *slog.Logger { return WithTool(l, "sync_to_calendar") }, "tool=sync_to_calendar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.with(newTestLogger(&buf)).Info("message")
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("Expected log output to contain %q, got %s", tt.want, buf.String())
			}
		})
	}
}

func TestErr(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("failed", Err(errors.New("boom")))
	if !strings.Contains(buf.String(), "error=boom") {
		t.Errorf("Expected error attribute, got %s", buf.String())
	}

	buf.Reset()
	logger.Info("ok", Err(nil))
	if strings.Contains(buf.String(), "error=") {
		t.Errorf("Expected no error attribute for nil error, got %s", buf.String())
	}
}

func TestAttrHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := newTestLogger(&buf)

	logger.Info("attrs",
		Operation("fetch_assignments"),
		Service("canvas"),
		Course("Biology 101"),
		Status(StatusSuccess),
	)

	out := buf.String()
	for _, want := range []string{
		"operation=fetch_assignments",
		"service=canvas",
		`course="Biology 101"`,
		"status=success",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log output to contain %q, got %s", want, out)
		}
	}
}

func TestSanitizeToken(t *testing.T) {
	if got := SanitizeToken(""); got != "<empty>" {
		t.Errorf("Expected '<empty>' for empty token, got %s", got)
	}

	got := SanitizeToken("secret-token-value")
	if strings.Contains(got, "secret") {
		t.Errorf("Sanitized token must not contain token content, got %s", got)
	}
	if got != "[token:18 chars]" {
		t.Errorf("Expected '[token:18 chars]', got %s", got)
	}
}
