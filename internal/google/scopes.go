package google

import (
	calendar "google.golang.org/api/calendar/v3"
)

// Scopes returns the OAuth scopes the application requests. Only full
// calendar access is needed; event create/update/delete all fall under it.
func Scopes() []string {
	return []string{
		calendar.CalendarScope,
	}
}
