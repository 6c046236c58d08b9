package calendar_tools

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"canvascal/internal/gcal"
	"canvascal/internal/instrumentation"
	"canvascal/internal/server"
	"canvascal/internal/timezone"
	"canvascal/internal/tools/common"
)

const (
	// defaultListDaysAhead is the lookahead window for list_calendar_events.
	defaultListDaysAhead = 7

	// defaultListMaxResults caps the number of events returned.
	defaultListMaxResults = 10

	// localLayout is the wall-clock datetime format events are specified in.
	localLayout = "2006-01-02T15:04:05"
)

// RegisterCalendarTools registers the Google Calendar tools with the MCP server.
func RegisterCalendarTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	createTool := mcp.NewTool("create_calendar_event",
		mcp.WithDescription("Create an event on the primary Google Calendar"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Event title"),
		),
		mcp.WithString("description",
			mcp.Description("Event description"),
		),
		mcp.WithString("startTime",
			mcp.Required(),
			mcp.Description("Start time as a wall-clock datetime, e.g. '2025-11-07T23:59:59'"),
		),
		mcp.WithString("endTime",
			mcp.Required(),
			mcp.Description("End time as a wall-clock datetime, e.g. '2025-11-08T00:59:59'"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the event times (default: 'America/New_York')"),
		),
	)

	s.AddTool(createTool, common.InstrumentedToolHandlerWithService(
		"create_calendar_event", instrumentation.ServiceCalendar, instrumentation.OperationCreate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateEvent(ctx, request, sc)
		}))

	listTool := mcp.NewTool("list_calendar_events",
		mcp.WithDescription("List upcoming events on the primary Google Calendar"),
		mcp.WithNumber("daysAhead",
			mcp.Description("How many days ahead to look (default: 7)"),
		),
		mcp.WithNumber("maxResults",
			mcp.Description("Maximum number of events to return (default: 10)"),
		),
	)

	s.AddTool(listTool, common.InstrumentedToolHandlerWithService(
		"list_calendar_events", instrumentation.ServiceCalendar, instrumentation.OperationList, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListEvents(ctx, request, sc)
		}))

	getTool := mcp.NewTool("get_calendar_event",
		mcp.WithDescription("Get details of a specific calendar event"),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to retrieve"),
		),
	)

	s.AddTool(getTool, common.InstrumentedToolHandlerWithService(
		"get_calendar_event", instrumentation.ServiceCalendar, instrumentation.OperationGet, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetEvent(ctx, request, sc)
		}))

	updateTool := mcp.NewTool("update_calendar_event",
		mcp.WithDescription("Update an existing calendar event; only the provided fields change"),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to update"),
		),
		mcp.WithString("title",
			mcp.Description("New event title"),
		),
		mcp.WithString("description",
			mcp.Description("New event description"),
		),
		mcp.WithString("startTime",
			mcp.Description("New start time as a wall-clock datetime"),
		),
		mcp.WithString("endTime",
			mcp.Description("New end time as a wall-clock datetime"),
		),
		mcp.WithString("timezone",
			mcp.Description("IANA timezone name for the new times (default: 'America/New_York')"),
		),
	)

	s.AddTool(updateTool, common.InstrumentedToolHandlerWithService(
		"update_calendar_event", instrumentation.ServiceCalendar, instrumentation.OperationUpdate, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateEvent(ctx, request, sc)
		}))

	deleteTool := mcp.NewTool("delete_calendar_event",
		mcp.WithDescription("Delete a calendar event"),
		mcp.WithString("eventId",
			mcp.Required(),
			mcp.Description("The ID of the event to delete"),
		),
	)

	s.AddTool(deleteTool, common.InstrumentedToolHandlerWithService(
		"delete_calendar_event", instrumentation.ServiceCalendar, instrumentation.OperationDelete, sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleDeleteEvent(ctx, request, sc)
		}))

	return nil
}

func handleCreateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	start, ok := args["startTime"].(string)
	if !ok || start == "" {
		return mcp.NewToolResultError("startTime is required"), nil
	}
	if err := validateDateTime(start); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid startTime: %v", err)), nil
	}

	end, ok := args["endTime"].(string)
	if !ok || end == "" {
		return mcp.NewToolResultError("endTime is required"), nil
	}
	if err := validateDateTime(end); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid endTime: %v", err)), nil
	}

	input := gcal.EventInput{
		Summary:       title,
		StartDateTime: start,
		EndDateTime:   end,
		TimeZone:      stringArg(args, "timezone", timezone.TargetZone),
	}
	if desc, ok := args["description"].(string); ok {
		input.Description = desc
	}

	client, err := sc.CalendarClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := client.CreateEvent(ctx, input)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create event: %v", err)), nil
	}

	result := fmt.Sprintf("Event created: %s\nID: %s\n", event.Summary, event.ID)
	if event.HTMLLink != "" {
		result += fmt.Sprintf("Link: %s\n", event.HTMLLink)
	}
	return mcp.NewToolResultText(result), nil
}

func handleListEvents(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	daysAhead := intArg(args, "daysAhead", defaultListDaysAhead)
	if daysAhead <= 0 {
		return mcp.NewToolResultError("daysAhead must be a positive number of days"), nil
	}
	maxResults := intArg(args, "maxResults", defaultListMaxResults)
	if maxResults <= 0 {
		return mcp.NewToolResultError("maxResults must be a positive number"), nil
	}

	client, err := sc.CalendarClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	now := time.Now()
	events, err := client.ListEvents(ctx, now, now.AddDate(0, 0, daysAhead), int64(maxResults))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list events: %v", err)), nil
	}

	if len(events) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No events in the next %d days.", daysAhead)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d events:\n\n", len(events))
	for i, event := range events {
		fmt.Fprintf(&b, "%d. %s\n", i+1, event.Summary)
		fmt.Fprintf(&b, "   ID: %s\n", event.ID)
		fmt.Fprintf(&b, "   Start: %s\n", event.Start.Format(time.RFC3339))
		fmt.Fprintf(&b, "   End: %s\n", event.End.Format(time.RFC3339))
		b.WriteString("\n")
	}
	return mcp.NewToolResultText(b.String()), nil
}

func handleGetEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := sc.CalendarClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := client.GetEvent(ctx, eventID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get event: %v", err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s\n", event.Summary)
	fmt.Fprintf(&b, "ID: %s\n", event.ID)
	fmt.Fprintf(&b, "Start: %s\n", event.Start.Format(time.RFC3339))
	fmt.Fprintf(&b, "End: %s\n", event.End.Format(time.RFC3339))
	fmt.Fprintf(&b, "Status: %s\n", event.Status)
	if event.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", event.Description)
	}
	if event.HTMLLink != "" {
		fmt.Fprintf(&b, "Link: %s\n", event.HTMLLink)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func handleUpdateEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	patch := gcal.EventPatch{
		Summary:       stringArg(args, "title", ""),
		Description:   stringArg(args, "description", ""),
		StartDateTime: stringArg(args, "startTime", ""),
		EndDateTime:   stringArg(args, "endTime", ""),
		TimeZone:      stringArg(args, "timezone", ""),
	}

	if patch.StartDateTime != "" {
		if err := validateDateTime(patch.StartDateTime); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid startTime: %v", err)), nil
		}
	}
	if patch.EndDateTime != "" {
		if err := validateDateTime(patch.EndDateTime); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid endTime: %v", err)), nil
		}
	}
	if patch == (gcal.EventPatch{}) {
		return mcp.NewToolResultError("at least one field to update is required"), nil
	}

	client, err := sc.CalendarClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	event, err := client.UpdateEvent(ctx, eventID, patch)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event updated: %s\nID: %s\n", event.Summary, event.ID)), nil
}

func handleDeleteEvent(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	eventID, ok := args["eventId"].(string)
	if !ok || eventID == "" {
		return mcp.NewToolResultError("eventId is required"), nil
	}

	client, err := sc.CalendarClient(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.DeleteEvent(ctx, eventID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete event: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Event %s deleted.", eventID)), nil
}

// validateDateTime checks the wall-clock layout used for event times.
func validateDateTime(value string) error {
	if _, err := time.Parse(localLayout, value); err != nil {
		return fmt.Errorf("expected format %s: %w", localLayout, err)
	}
	return nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// intArg reads a JSON number argument, which arrives as float64.
func intArg(args map[string]any, key string, fallback int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return fallback
}
