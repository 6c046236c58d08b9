package gcal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"canvascal/internal/google"
	"canvascal/internal/logging"
	"canvascal/internal/timezone"
)

// calendarID targets the user's primary calendar for all operations.
const calendarID = "primary"

// Client wraps the Google Calendar service.
type Client struct {
	svc    *calendar.Service
	logger *slog.Logger
}

// NewClient creates a Calendar client authenticated through the configured
// refresh token. The oauth2 token source caches the short-lived access
// token for the lifetime of this client; a stale credential surfaces as an
// API error on the next call rather than being retried here.
func NewClient(ctx context.Context, cfg google.Config, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	ts, err := cfg.TokenSource(ctx)
	if err != nil {
		return nil, err
	}

	httpClient := oauth2.NewClient(ctx, ts)
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logging.WithService(logger, "calendar"),
	}, nil
}

// apiError turns a googleapi failure into a descriptive error carrying the
// status code and upstream body text.
func apiError(op string, err error) error {
	var ge *googleapi.Error
	if errors.As(err, &ge) {
		return fmt.Errorf("failed to %s: calendar API returned status %d: %s", op, ge.Code, ge.Body)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}

// CreateEvent creates a new event on the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*EventSummary, error) {
	if input.TimeZone == "" {
		input.TimeZone = timezone.TargetZone
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.StartDateTime,
			TimeZone: input.TimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.EndDateTime,
			TimeZone: input.TimeZone,
		},
	}

	if len(input.ReminderMinutes) > 0 {
		overrides := make([]*calendar.EventReminder, 0, len(input.ReminderMinutes))
		for _, minutes := range input.ReminderMinutes {
			overrides = append(overrides, &calendar.EventReminder{
				Method:  "popup",
				Minutes: minutes,
			})
		}
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides:  overrides,
			// UseDefault is a false boolean, which encoding/json would
			// otherwise omit.
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, apiError("create event", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// ListEvents lists events on the primary calendar within a time range,
// expanded to single events and ordered by start time.
func (c *Client) ListEvents(ctx context.Context, timeMin, timeMax time.Time, maxResults int64) ([]EventSummary, error) {
	call := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx)

	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	events, err := call.Do()
	if err != nil {
		return nil, apiError("list events", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}
	return summaries, nil
}

// GetEvent retrieves a specific event by ID.
func (c *Client) GetEvent(ctx context.Context, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, apiError("get event", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// UpdateEvent applies a partial update to an existing event. Only fields
// set in the patch are touched; the rest of the event is preserved.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, patch EventPatch) (*EventSummary, error) {
	existing, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, apiError("get existing event", err)
	}

	if patch.Summary != "" {
		existing.Summary = patch.Summary
	}
	if patch.Description != "" {
		existing.Description = patch.Description
	}

	tz := patch.TimeZone
	if tz == "" {
		tz = timezone.TargetZone
	}
	if patch.StartDateTime != "" {
		existing.Start = &calendar.EventDateTime{
			DateTime: patch.StartDateTime,
			TimeZone: tz,
		}
	}
	if patch.EndDateTime != "" {
		existing.End = &calendar.EventDateTime{
			DateTime: patch.EndDateTime,
			TimeZone: tz,
		}
	}

	updated, err := c.svc.Events.Update(calendarID, eventID, existing).Context(ctx).Do()
	if err != nil {
		return nil, apiError("update event", err)
	}

	summary := toEventSummary(updated)
	return &summary, nil
}

// DeleteEvent deletes an event. The calendar API answers a successful
// delete with an empty body; that is treated as success.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return apiError("delete event", err)
	}
	return nil
}
