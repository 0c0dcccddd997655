package mcp

import (
	"context"
	"io"
	"net/http"

	"github.com/mark3labs/mcp-go/server"

	"github.com/junerver/prompt-keeper/internal/config"
)

// HTTP endpoint paths of the MCP transports.
const (
	PathSSE        = "/sse"
	PathMessage    = "/message"
	PathStreamable = "/mcp"
)

// ServeStdio speaks MCP over in/out until ctx is cancelled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(s.logger.StdLogger())
	return stdio.Listen(ctx, in, out)
}

// HTTPHandlers returns the handlers to mount for an HTTP transport, keyed by
// path. It returns nil for the stdio transport.
func (s *Server) HTTPHandlers(transport string) map[string]http.Handler {
	switch transport {
	case config.TransportSSE:
		sse := server.NewSSEServer(s.mcp,
			server.WithSSEEndpoint(PathSSE),
			server.WithMessageEndpoint(PathMessage),
		)
		return map[string]http.Handler{
			PathSSE:     sse.SSEHandler(),
			PathMessage: sse.MessageHandler(),
		}
	case config.TransportStreamable:
		return map[string]http.Handler{
			PathStreamable: server.NewStreamableHTTPServer(s.mcp, server.WithEndpointPath(PathStreamable)),
		}
	default:
		return nil
	}
}
