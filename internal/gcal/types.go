package gcal

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// EventInput represents the input for creating a calendar event.
//
// Start and end are wall-clock datetimes ("2006-01-02T15:04:05") paired
// with an explicit timezone name, so DST resolution is delegated to the
// calendar service rather than computed here.
type EventInput struct {
	Summary       string
	Description   string
	StartDateTime string
	EndDateTime   string
	TimeZone      string

	// ReminderMinutes lists popup reminder offsets before the event start.
	// Empty keeps the calendar's default reminders.
	ReminderMinutes []int64
}

// EventPatch carries partial updates for an existing event. Empty fields
// are left untouched.
type EventPatch struct {
	Summary       string
	Description   string
	StartDateTime string
	EndDateTime   string
	TimeZone      string
}

// EventSummary represents a simplified calendar event for listing.
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Status      string
	HTMLLink    string
}

// toEventSummary converts a Google Calendar event to an EventSummary.
func toEventSummary(event *calendar.Event) EventSummary {
	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
	}

	if event.Start != nil {
		summary.Start = parseEventTime(event.Start)
	}
	if event.End != nil {
		summary.End = parseEventTime(event.End)
	}

	return summary
}

// parseEventTime handles both timed and all-day event boundaries.
func parseEventTime(edt *calendar.EventDateTime) time.Time {
	if edt.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, edt.DateTime); err == nil {
			return t
		}
	}
	if edt.Date != "" {
		if t, err := time.Parse("2006-01-02", edt.Date); err == nil {
			return t
		}
	}
	return time.Time{}
}
