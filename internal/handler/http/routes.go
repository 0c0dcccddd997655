package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// mcpSessionHeader carries the streamable transport's session id.
const mcpSessionHeader = "Mcp-Session-Id"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.listener.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader, mcpSessionHeader, "Mcp-Protocol-Version", "Last-Event-ID"},
		ExposedHeaders:   []string{traceIDHeader, mcpSessionHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/health/", h.getHealth)
	})

	// MCP transports
	router.Group(func(r chi.Router) {
		if h.auth.Enabled() {
			r.Use(h.withAuth)
		}
		for path, handler := range h.mcp.HTTPHandlers(h.listener.Transport) {
			r.Handle(path, handler)
		}
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
