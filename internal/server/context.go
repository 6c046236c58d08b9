package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"canvascal/internal/canvas"
	"canvascal/internal/config"
	"canvascal/internal/gcal"
	"canvascal/internal/google"
	"canvascal/internal/instrumentation"
	"canvascal/internal/syncer"
)

// ServerContext holds the context for the MCP server.
//
// The Google OAuth configuration is mutable: set_google_auth_code replaces
// the refresh token at runtime, which invalidates the cached calendar
// client so the next call rebuilds it with the new credential. All access
// goes through the mutex because tool handlers run concurrently.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger

	canvasClient *canvas.Client

	googleConfig   google.Config
	calendarClient *gcal.Client

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context from the loaded
// configuration. The Canvas client is created eagerly; the calendar client
// is created on first use because it needs a refresh token that may only
// arrive later via set_google_auth_code.
func NewServerContext(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ServerContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:          shutdownCtx,
		cancel:       cancel,
		logger:       logger,
		canvasClient: canvas.NewClient(cfg.Canvas.BaseURL, cfg.Canvas.Token, logger),
		googleConfig: cfg.Google,
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// CanvasClient returns the Canvas client.
func (sc *ServerContext) CanvasClient() *canvas.Client {
	return sc.canvasClient
}

// GoogleConfig returns a snapshot of the current Google OAuth configuration.
func (sc *ServerContext) GoogleConfig() google.Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.googleConfig
}

// SetGoogleRefreshToken replaces the stored refresh token and drops the
// cached calendar client so the next use picks up the new credential.
func (sc *ServerContext) SetGoogleRefreshToken(token string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.googleConfig.RefreshToken = token
	sc.calendarClient = nil
}

// CalendarClient returns the Google Calendar client, creating and caching
// it on first use. It fails when no refresh token has been configured yet.
func (sc *ServerContext) CalendarClient(ctx context.Context) (*gcal.Client, error) {
	sc.mu.RLock()
	client := sc.calendarClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.calendarClient != nil {
		return sc.calendarClient, nil
	}

	client, err := gcal.NewClient(ctx, sc.googleConfig, sc.logger)
	if err != nil {
		return nil, err
	}
	sc.calendarClient = client
	return client, nil
}

// Syncer builds a sync orchestrator over the current clients.
func (sc *ServerContext) Syncer(ctx context.Context) (*syncer.Syncer, error) {
	cal, err := sc.CalendarClient(ctx)
	if err != nil {
		return nil, err
	}
	return syncer.New(sc.canvasClient, cal, sc.logger), nil
}

// SetMetrics sets the metrics recorder for tool instrumentation.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is off.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool instrumentation.
func (sc *ServerContext) SetAuditLogger(audit *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = audit
}

// AuditLogger returns the audit logger, or nil if not configured.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
