// Package context7 provides a command-line client for the Context7
// documentation service. It resolves library names to Context7 library IDs
// and fetches up-to-date documentation by talking to the Context7 MCP server,
// which runs as a subprocess.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mcp/, lipgloss/, yaml/).
package context7
