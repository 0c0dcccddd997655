package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/workers"
)

type server struct {
	httpServer  *httpServer
	stdioServer *stdioServer
	workers     *workers.Workers
	logger      *logger.Logger
}

// NewServer picks the transport named in cfg.Listener. router is used by the
// HTTP transports and stdio by the stdio one; the other may be nil. jobs
// run alongside the transport and are stopped before Run returns.
func NewServer(router http.Handler, stdio StdioServer, jobs *workers.Workers, cfg config.ServerListener, logger *logger.Logger) (Server, error) {
	logger.Info().Str("transport", cfg.Transport).Msg("creating new server...")
	s := &server{workers: jobs, logger: logger}

	switch cfg.Transport {
	case config.TransportStdio:
		if stdio != nil {
			s.stdioServer = newStdioServer(stdio, os.Stdin, os.Stdout, logger)
		}
	case config.TransportSSE, config.TransportStreamable:
		if router != nil {
			s.httpServer = newHTTPServer(router, cfg.Address, logger)
		}
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownTransport, cfg.Transport)
	}

	if s.httpServer == nil && s.stdioServer == nil {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if s.workers != nil {
		s.workers.Start(ctx)
		defer s.workers.Stop()
	}

	var err error
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		err = s.httpServer.Run(ctx)
	} else {
		s.logger.Info().Msg("Launching stdio server")
		err = s.stdioServer.Run(ctx)
	}

	if err != nil {
		s.logger.Err(err).Msg("server stopped with error")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

type stdioServer struct {
	server StdioServer
	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

func newStdioServer(srv StdioServer, in io.Reader, out io.Writer, logger *logger.Logger) *stdioServer {
	return &stdioServer{server: srv, in: in, out: out, logger: logger}
}

// Run returns nil when the client closes the stream or ctx is cancelled.
func (s *stdioServer) Run(ctx context.Context) error {
	err := s.server.ServeStdio(ctx, s.in, s.out)
	if err == nil || ctx.Err() != nil || err == io.EOF {
		return nil
	}
	return fmt.Errorf("stdio server: %w", err)
}
