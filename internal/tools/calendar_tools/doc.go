// Package calendar_tools registers the Google Calendar event tools:
// create, list, get, update, and delete on the primary calendar.
//
// Event times are wall-clock datetimes paired with an IANA timezone name
// (default America/New_York); the calendar service resolves them against
// daylight saving rules.
package calendar_tools
