package syncer

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"canvascal/internal/canvas"
	"canvascal/internal/gcal"
	"canvascal/internal/logging"
	"canvascal/internal/timezone"
)

const (
	// eventDuration is the length of every created event: due time plus
	// one hour.
	eventDuration = time.Hour

	// Fixed two-tier popup reminders: one day and one hour before start.
	reminderDayBefore  = 1440
	reminderHourBefore = 60
)

// AssignmentSource fetches the normalized assignment list.
type AssignmentSource interface {
	FetchAssignments(ctx context.Context) ([]canvas.Assignment, error)
}

// EventCreator creates calendar events.
type EventCreator interface {
	CreateEvent(ctx context.Context, input gcal.EventInput) (*gcal.EventSummary, error)
}

// Report lists the outcome of one sync run. Both slices hold
// human-readable reason strings, one per item considered.
type Report struct {
	Synced  []string
	Skipped []string
}

// Syncer orchestrates one Canvas-to-calendar sync run.
type Syncer struct {
	source AssignmentSource
	cal    EventCreator
	logger *slog.Logger

	// now is replaceable for tests.
	now func() time.Time
}

// New creates a Syncer over the given source and calendar.
func New(source AssignmentSource, cal EventCreator, logger *slog.Logger) *Syncer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Syncer{
		source: source,
		cal:    cal,
		logger: logging.WithOperation(logger, "sync"),
		now:    time.Now,
	}
}

// Sync fetches assignments and creates a calendar event for every item due
// within the next daysAhead days. A fetch failure aborts the run; a
// calendar failure for a single item is recorded as a skip and the loop
// continues.
func (s *Syncer) Sync(ctx context.Context, daysAhead int) (*Report, error) {
	if daysAhead <= 0 {
		return nil, fmt.Errorf("daysAhead must be a positive number of days, got %d", daysAhead)
	}

	items, err := s.source.FetchAssignments(ctx)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	now := s.now()

	for _, item := range items {
		days := daysUntil(now, item.DueAt)

		if days <= 0 {
			report.skip(item, "due in the past")
			continue
		}
		if days > daysAhead {
			report.skip(item, fmt.Sprintf("due in %d days, outside the %d-day window", days, daysAhead))
			continue
		}

		start, err := timezone.ConvertTime(item.DueAt)
		if err != nil {
			report.skip(item, "date conversion failed")
			continue
		}
		end, err := timezone.ConvertTime(item.DueAt.Add(eventDuration))
		if err != nil {
			report.skip(item, "end date conversion failed")
			continue
		}

		payload := buildEvent(item, start, end)
		if _, err := s.cal.CreateEvent(ctx, payload); err != nil {
			report.skip(item, err.Error())
			continue
		}

		report.Synced = append(report.Synced, fmt.Sprintf("%s (due %s)", item.Title, start.Display))
	}

	s.logger.Info("sync completed",
		slog.Int("synced", len(report.Synced)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("days_ahead", daysAhead))

	return report, nil
}

func (r *Report) skip(item canvas.Assignment, reason string) {
	r.Skipped = append(r.Skipped, fmt.Sprintf("%s: %s", item.Title, reason))
}

// daysUntil counts the days between now and due in ceiled 24-hour steps.
// An item due later today yields 0 and is therefore excluded from sync.
func daysUntil(now, due time.Time) int {
	return int(math.Ceil(due.Sub(now).Hours() / 24))
}

// buildEvent assembles the calendar payload for one admitted item.
func buildEvent(item canvas.Assignment, start, end *timezone.LocalTime) gcal.EventInput {
	return gcal.EventInput{
		Summary:         fmt.Sprintf("%s %s", item.Kind.Glyph(), item.Title),
		Description:     buildDescription(item, start),
		StartDateTime:   start.DateTime,
		EndDateTime:     end.DateTime,
		TimeZone:        timezone.TargetZone,
		ReminderMinutes: []int64{reminderDayBefore, reminderHourBefore},
	}
}

func buildDescription(item canvas.Assignment, start *timezone.LocalTime) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Due: %s\n", start.Display)
	fmt.Fprintf(&b, "Points: %s\n", FormatPoints(item.PointsPossible))
	fmt.Fprintf(&b, "Course: %s\n", orNA(item.CourseName))
	if item.URL != "" {
		b.WriteString(item.URL)
	}
	return b.String()
}

// FormatPoints renders an optional point value, "N/A" when absent.
func FormatPoints(points *float64) string {
	if points == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*points, 'f', -1, 64)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
