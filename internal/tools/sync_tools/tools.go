package sync_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"canvascal/internal/instrumentation"
	"canvascal/internal/server"
	"canvascal/internal/syncer"
	"canvascal/internal/tools/common"
)

// defaultSyncDaysAhead is the default forward window for sync runs.
const defaultSyncDaysAhead = 14

// RegisterSyncTools registers the sync tool with the MCP server.
func RegisterSyncTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	syncTool := mcp.NewTool("sync_to_calendar",
		mcp.WithDescription("Create Google Calendar events for every Canvas assignment due within the next daysAhead days. Re-running creates duplicates; there is no de-duplication."),
		mcp.WithNumber("daysAhead",
			mcp.Description("How many days ahead to sync (default: 14)"),
		),
	)

	s.AddTool(syncTool, common.InstrumentedToolHandler("sync_to_calendar", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSync(ctx, request, sc)
		}))

	return nil
}

func handleSync(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	daysAhead := defaultSyncDaysAhead
	if v, ok := args["daysAhead"].(float64); ok {
		daysAhead = int(v)
	}
	if daysAhead <= 0 {
		return mcp.NewToolResultError("daysAhead must be a positive number of days"), nil
	}

	s, err := sc.Syncer(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	start := time.Now()
	report, err := s.Sync(ctx, daysAhead)
	if err != nil {
		if metrics := sc.Metrics(); metrics != nil {
			metrics.RecordSyncRun(ctx, instrumentation.StatusError, 0, 0, time.Since(start))
		}
		return mcp.NewToolResultError(fmt.Sprintf("Sync failed: %v", err)), nil
	}

	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordSyncRun(ctx, instrumentation.StatusSuccess, len(report.Synced), len(report.Skipped), time.Since(start))
	}

	return mcp.NewToolResultText(formatReport(report, daysAhead)), nil
}

func formatReport(report *syncer.Report, daysAhead int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sync complete (%d-day window): %d synced, %d skipped.\n", daysAhead, len(report.Synced), len(report.Skipped))

	if len(report.Synced) > 0 {
		b.WriteString("\nSynced:\n")
		for _, line := range report.Synced {
			fmt.Fprintf(&b, "  ✓ %s\n", line)
		}
	}
	if len(report.Skipped) > 0 {
		b.WriteString("\nSkipped:\n")
		for _, line := range report.Skipped {
			fmt.Fprintf(&b, "  - %s\n", line)
		}
	}
	return b.String()
}
