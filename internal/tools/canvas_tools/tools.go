package canvas_tools

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"canvascal/internal/canvas"
	"canvascal/internal/instrumentation"
	"canvascal/internal/server"
	"canvascal/internal/syncer"
	"canvascal/internal/timezone"
	"canvascal/internal/tools/common"
)

// maxDescriptionLength bounds the description excerpt in tool output.
const maxDescriptionLength = 200

// RegisterCanvasTools registers the Canvas read tools with the MCP server.
func RegisterCanvasTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	assignmentsTool := mcp.NewTool("get_canvas_assignments",
		mcp.WithDescription("List upcoming Canvas assignments, quizzes, and discussions across all active courses, with due dates in Eastern time"),
	)

	s.AddTool(assignmentsTool, common.InstrumentedToolHandlerWithService(
		"get_canvas_assignments", instrumentation.ServiceCanvas, instrumentation.OperationFetch, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetAssignments(ctx, request, sc)
		}))

	upcomingTool := mcp.NewTool("get_canvas_upcoming_events",
		mcp.WithDescription("List the Canvas upcoming-events feed (assignment calendar events), with due dates in Eastern time"),
	)

	s.AddTool(upcomingTool, common.InstrumentedToolHandlerWithService(
		"get_canvas_upcoming_events", instrumentation.ServiceCanvas, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetUpcomingEvents(ctx, request, sc)
		}))

	return nil
}

func handleGetAssignments(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	items, err := sc.CanvasClient().FetchAssignments(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch Canvas assignments: %v", err)), nil
	}

	return mcp.NewToolResultText(formatItems(items)), nil
}

func handleGetUpcomingEvents(ctx context.Context, _ mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	items, err := sc.CanvasClient().FetchUpcomingEvents(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch Canvas upcoming events: %v", err)), nil
	}

	return mcp.NewToolResultText(formatItems(items)), nil
}

func formatItems(items []canvas.Assignment) string {
	if len(items) == 0 {
		return "No upcoming items found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d items:\n\n", len(items))

	for i, item := range items {
		fmt.Fprintf(&b, "%d. %s %s [%s]\n", i+1, item.Kind.Glyph(), item.Title, item.Kind.Label())
		fmt.Fprintf(&b, "   Due: %s\n", formatDue(item))
		fmt.Fprintf(&b, "   Points: %s\n", syncer.FormatPoints(item.PointsPossible))
		fmt.Fprintf(&b, "   Course: %s\n", orNA(item.CourseName))
		if item.URL != "" {
			fmt.Fprintf(&b, "   Link: %s\n", item.URL)
		}
		if excerpt := truncate(item.Description, maxDescriptionLength); excerpt != "" {
			fmt.Fprintf(&b, "   %s\n", excerpt)
		}
		b.WriteString("\n")
	}

	return b.String()
}

func formatDue(item canvas.Assignment) string {
	local, err := timezone.ConvertTime(item.DueAt)
	if err != nil {
		// Fall back to the raw UTC value rather than dropping the item.
		return item.DueAt.Format("2006-01-02 15:04 MST")
	}
	return local.Display
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func truncate(s string, limit int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= limit {
		return s
	}

	runes := []rune(s)
	return string(runes[:limit]) + "..."
}
