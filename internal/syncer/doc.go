// Package syncer decides which Canvas assignments become Google Calendar
// events and carries out the per-item creation.
//
// An item is admitted when its due date falls strictly inside the forward
// window: more than zero and at most daysAhead days away, counting in
// ceiled 24-hour steps. Items due in the past or due today are excluded.
//
// Failure handling is deliberately asymmetric with the fetch phase: a
// calendar failure for one item is caught and reported as a skip without
// aborting the remaining items, while the Canvas fetch itself is
// fail-fast across courses.
//
// The syncer keeps no state between runs. Re-running with an overlapping
// window creates duplicate calendar events.
package syncer
