// Package cmd implements the command-line interface for canvascal.
//
// This package provides the following commands:
//   - serve: Start the MCP server that bridges Canvas assignments to Google Calendar
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The serve command is the default command when no subcommand is specified.
package cmd
