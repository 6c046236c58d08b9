// Package server holds the shared state behind the MCP tool handlers: the
// Canvas client, the Google OAuth configuration with its lazily created
// calendar client, and the instrumentation hooks. It also runs the
// dedicated Prometheus metrics server.
package server
