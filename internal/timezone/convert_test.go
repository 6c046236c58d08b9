package timezone

import (
	"strings"
	"testing"
	"time"
)

func TestConvert_CrossesDateBoundary(t *testing.T) {
	// 04:59:59 UTC on Nov 8 is still Nov 7 in the eastern zone (EST, UTC-5).
	result, err := Convert("2025-11-08T04:59:59Z")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if result.DateTime != "2025-11-07T23:59:59" {
		t.Errorf("Expected local datetime '2025-11-07T23:59:59', got %s", result.DateTime)
	}
	if !strings.Contains(result.Display, "November 7, 2025") {
		t.Errorf("Expected display string to contain 'November 7, 2025', got %s", result.Display)
	}
	if !strings.Contains(result.Display, "11:59 PM") {
		t.Errorf("Expected display string to contain '11:59 PM', got %s", result.Display)
	}
}

func TestConvert_DaylightSavingOffset(t *testing.T) {
	// Mid-July is EDT (UTC-4), so 03:59 UTC is 11:59 PM the previous day.
	result, err := Convert("2025-07-15T03:59:00Z")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if result.DateTime != "2025-07-14T23:59:00" {
		t.Errorf("Expected local datetime '2025-07-14T23:59:00', got %s", result.DateTime)
	}
}

func TestConvert_SameDay(t *testing.T) {
	result, err := Convert("2025-11-07T18:00:00Z")
	if err != nil {
		t.Fatalf("Convert returned error: %v", err)
	}

	if result.DateTime != "2025-11-07T13:00:00" {
		t.Errorf("Expected local datetime '2025-11-07T13:00:00', got %s", result.DateTime)
	}
	if !strings.Contains(result.Display, "1:00 PM") {
		t.Errorf("Expected display string to contain '1:00 PM', got %s", result.Display)
	}
}

func TestConvert_InvalidTimestamp(t *testing.T) {
	for _, value := range []string{"", "not-a-date", "2025-13-45T99:00:00Z"} {
		if _, err := Convert(value); err == nil {
			t.Errorf("Expected error for %q, got nil", value)
		}
	}
}

func TestConvertTime_YearBoundary(t *testing.T) {
	// New Year's Day 04:30 UTC is still New Year's Eve in the target zone.
	instant := time.Date(2026, time.January, 1, 4, 30, 0, 0, time.UTC)
	result, err := ConvertTime(instant)
	if err != nil {
		t.Fatalf("ConvertTime returned error: %v", err)
	}

	if result.DateTime != "2025-12-31T23:30:00" {
		t.Errorf("Expected local datetime '2025-12-31T23:30:00', got %s", result.DateTime)
	}
	if !strings.Contains(result.Display, "December 31, 2025") {
		t.Errorf("Expected display string to contain 'December 31, 2025', got %s", result.Display)
	}
}
