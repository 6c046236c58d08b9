package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"canvascal/internal/instrumentation"
)

func enabledProvider(t *testing.T) *instrumentation.Provider {
	t.Helper()

	config := instrumentation.DefaultConfig()
	config.MetricsExporter = instrumentation.ExporterPrometheus
	provider, err := instrumentation.NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })
	return provider
}

func TestNewMetricsServer_Defaults(t *testing.T) {
	server, err := NewMetricsServer(MetricsServerConfig{
		InstrumentationProvider: enabledProvider(t),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if server.Addr() != DefaultMetricsAddr {
		t.Errorf("Expected default addr %s, got %s", DefaultMetricsAddr, server.Addr())
	}
}

func TestNewMetricsServer_RequiresProvider(t *testing.T) {
	if _, err := NewMetricsServer(MetricsServerConfig{Addr: ":0"}); err == nil {
		t.Fatal("Expected error without instrumentation provider")
	}
}

func TestNewMetricsServer_RequiresEnabledProvider(t *testing.T) {
	config := instrumentation.DefaultConfig()
	config.Enabled = false
	provider, err := instrumentation.NewProvider(context.Background(), config)
	if err != nil {
		t.Fatalf("Failed to create provider: %v", err)
	}

	if _, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    ":0",
		InstrumentationProvider: provider,
	}); err == nil {
		t.Fatal("Expected error for disabled provider")
	}
}

func TestMetricsServer_ServesMetricsEndpoint(t *testing.T) {
	server, err := NewMetricsServer(MetricsServerConfig{
		Addr:                    "127.0.0.1:0",
		InstrumentationProvider: enabledProvider(t),
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ready := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- server.StartWithReadySignal(ready)
	}()

	select {
	case <-ready:
	case err := <-done:
		t.Fatalf("Server exited before ready: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for metrics server")
	}

	resp, err := http.Get("http://" + server.BoundAddr() + "/healthz")
	if err != nil {
		t.Fatalf("Failed to reach metrics server: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from /healthz, got %d", resp.StatusCode)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		t.Errorf("Unexpected shutdown error: %v", err)
	}
}
