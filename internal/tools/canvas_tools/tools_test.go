package canvas_tools

import (
	"strings"
	"testing"
	"time"

	"canvascal/internal/canvas"
)

func floatPtr(f float64) *float64 { return &f }

func TestFormatItems(t *testing.T) {
	items := []canvas.Assignment{
		{
			ID:             "42",
			Title:          "Midterm Quiz",
			Kind:           canvas.KindQuiz,
			DueAt:          time.Date(2025, time.November, 8, 4, 59, 59, 0, time.UTC),
			PointsPossible: floatPtr(25),
			CourseName:     "Biology 101",
			URL:            "https://school.instructure.com/courses/1/quizzes/42",
			Description:    "Covers chapters 3 and 4.",
		},
		{
			ID:    "77",
			Title: "Weekly Reflection",
			Kind:  canvas.KindDiscussion,
			DueAt: time.Date(2025, time.November, 10, 4, 59, 0, 0, time.UTC),
		},
	}

	output := formatItems(items)

	if !strings.Contains(output, "Found 2 items") {
		t.Errorf("Expected item count header, got: %s", output)
	}
	if !strings.Contains(output, "✏️ Midterm Quiz [Quiz]") {
		t.Errorf("Expected quiz glyph and label, got: %s", output)
	}
	if !strings.Contains(output, "💬 Weekly Reflection [Discussion]") {
		t.Errorf("Expected discussion glyph and label, got: %s", output)
	}
	// 04:59 UTC on Nov 8 is still Nov 7 in Eastern time.
	if !strings.Contains(output, "November 7, 2025 at 11:59 PM") {
		t.Errorf("Expected Eastern due date display, got: %s", output)
	}
	if !strings.Contains(output, "Points: 25") {
		t.Errorf("Expected points, got: %s", output)
	}
	if !strings.Contains(output, "Course: Biology 101") {
		t.Errorf("Expected course, got: %s", output)
	}
	if !strings.Contains(output, "Points: N/A") || !strings.Contains(output, "Course: N/A") {
		t.Errorf("Expected N/A for missing optional fields, got: %s", output)
	}
	if !strings.Contains(output, "https://school.instructure.com/courses/1/quizzes/42") {
		t.Errorf("Expected link, got: %s", output)
	}
}

func TestFormatItems_Empty(t *testing.T) {
	output := formatItems(nil)
	if output != "No upcoming items found." {
		t.Errorf("Unexpected empty-list output: %s", output)
	}
}

func TestTruncate(t *testing.T) {
	long := strings.Repeat("a", maxDescriptionLength+50)

	got := truncate(long, maxDescriptionLength)
	if len([]rune(got)) != maxDescriptionLength+3 {
		t.Errorf("Expected truncation to %d runes plus ellipsis, got %d", maxDescriptionLength, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Expected ellipsis suffix, got: %s", got)
	}

	short := "short description"
	if truncate(short, maxDescriptionLength) != short {
		t.Error("Expected short description unchanged")
	}
}
