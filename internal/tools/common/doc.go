// Package common provides shared helpers for the MCP tool packages, most
// notably the instrumented handler wrapper that records metrics and audit
// logs around every tool invocation.
package common
