package http

import (
	"net/http"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/service"
)

// MCPServer is the part of the MCP server the router mounts.
type MCPServer interface {
	// HTTPHandlers returns the transport handlers keyed by path.
	HTTPHandlers(transport string) map[string]http.Handler
	// Published lists the names of the currently published prompts.
	Published() []string
}

type Handler struct {
	services *service.Services
	mcp      MCPServer
	listener config.ServerListener
	auth     config.AuthConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, mcp MCPServer, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Str("transport", cfg.Listener.Transport).Bool("auth", cfg.Auth.Enabled()).Msg("http handler created")
	return &Handler{
		services: services,
		mcp:      mcp,
		listener: cfg.Listener,
		auth:     cfg.Auth,
		logger:   logger,
	}
}
