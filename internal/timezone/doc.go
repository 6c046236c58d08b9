// Package timezone converts UTC instants from Canvas into the fixed
// target timezone used for all calendar submissions and display output.
//
// The target zone is America/New_York. Conversions produce two
// representations: a wall-clock datetime suitable for re-submission to
// the Google Calendar API (paired with an explicit timezone name, so
// DST handling stays with the calendar service) and a human-readable
// display string.
package timezone
