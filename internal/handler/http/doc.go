// Package http serves the MCP HTTP transports (SSE and streamable) together
// with a small status API on a chi router. Tracing, access logging, CORS and
// optional bearer-token authentication are applied here before requests
// reach the MCP server.
package http
