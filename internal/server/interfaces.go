package server

import (
	"context"
	"io"
)

// Server runs until ctx is cancelled, a termination signal arrives or the
// transport fails.
type Server interface {
	Run(ctx context.Context) error
}

// StdioServer speaks MCP over a pair of streams.
type StdioServer interface {
	ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error
}
