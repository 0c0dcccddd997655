// Package utils provides general-purpose helper utilities
// used across different parts of promptctl.
// Includes tools for working with context, type-safe keys, HTTP response
// writing, HTTP client initialization, JWT token issuing and inspection, and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientCtxKey is the key used to store the authenticated MCP client name
// (the token subject) in the context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.ClientCtxKey, "claude-desktop")
var ClientCtxKey = contextKey("client")

// GetClientFromContext retrieves the authenticated MCP client name.
//
// Returns ok == false when auth is disabled or the value has an unexpected
// type.
func GetClientFromContext(ctx context.Context) (string, bool) {
	client, ok := ctx.Value(ClientCtxKey).(string)
	return client, ok
}
