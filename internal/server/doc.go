// Package server runs the MCP server on the configured transport and shuts it
// down gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
