// Package canvas_tools registers the Canvas LMS read tools: the aggregated
// assignment list and the upcoming calendar-events feed.
package canvas_tools
