package timezone

import (
	"fmt"
	"sync"
	"time"
)

// TargetZone is the fixed civil timezone all conversions use.
const TargetZone = "America/New_York"

const (
	// localLayout is the wall-clock format the Google Calendar API accepts
	// when an explicit timeZone field accompanies the dateTime.
	localLayout = "2006-01-02T15:04:05"

	// displayLayout is the long human-readable form shown to users.
	displayLayout = "January 2, 2006 at 3:04 PM"
)

var (
	loadOnce sync.Once
	loc      *time.Location
	loadErr  error
)

// LocalTime is a UTC instant rendered in the target zone.
type LocalTime struct {
	// DateTime is the wall-clock representation, e.g. "2025-11-07T23:59:59".
	DateTime string

	// Display is the human-readable form, e.g. "November 7, 2025 at 11:59 PM".
	Display string
}

// location loads the target zone once and caches it for the process.
func location() (*time.Location, error) {
	loadOnce.Do(func() {
		loc, loadErr = time.LoadLocation(TargetZone)
	})
	return loc, loadErr
}

// Convert parses an ISO-8601/RFC3339 UTC timestamp and renders it in the
// target zone. An unparseable timestamp returns an error so callers can
// treat the item as filtered rather than fail the whole operation.
func Convert(utcValue string) (*LocalTime, error) {
	t, err := time.Parse(time.RFC3339, utcValue)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp %q: %w", utcValue, err)
	}
	return ConvertTime(t)
}

// ConvertTime renders an already-parsed instant in the target zone.
func ConvertTime(t time.Time) (*LocalTime, error) {
	l, err := location()
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", TargetZone, err)
	}

	local := t.In(l)
	return &LocalTime{
		DateTime: local.Format(localLayout),
		Display:  local.Format(displayLayout),
	}, nil
}
