package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/junerver/prompt-keeper/internal/logger"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

type httpServer struct {
	address string
	handler http.Handler
	logger  *logger.Logger

	mu    sync.Mutex
	addr  net.Addr
	ready chan struct{}
}

func newHTTPServer(handler http.Handler, address string, logger *logger.Logger) *httpServer {
	return &httpServer{
		address: address,
		handler: handler,
		logger:  logger,
		ready:   make(chan struct{}),
	}
}

// Run listens on the configured address and serves until ctx is done.
// Request contexts derive from ctx so long-lived SSE streams end on shutdown.
func (h *httpServer) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", h.address)
	if err != nil {
		close(h.ready)
		return fmt.Errorf("HTTP server listen on %s: %w", h.address, err)
	}

	h.mu.Lock()
	h.addr = ln.Addr()
	h.mu.Unlock()
	close(h.ready)

	srv := &http.Server{
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
		ErrorLog:          h.logger.StdLogger(),
	}

	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", ln.Addr().String()).Msg("HTTP server listening")
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err = <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}

// Addr blocks until the listener is bound and returns its address.
func (h *httpServer) Addr() net.Addr {
	<-h.ready
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.addr
}
