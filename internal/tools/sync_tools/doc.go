// Package sync_tools registers the sync_to_calendar tool, the one-shot
// Canvas-to-calendar bridge run.
package sync_tools
