// Package config provides configuration loading, merging, and validation
// facilities for promptctl.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags (registered with [RegisterFlags])
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetClientConfig] for backend commands,
// [GetServerConfig] for the MCP server and [GetAuthConfig] for token issuing.
package config
