package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/client"
	"github.com/junerver/prompt-keeper/internal/config"
	httphandler "github.com/junerver/prompt-keeper/internal/handler/http"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/mcp"
	"github.com/junerver/prompt-keeper/internal/server"
	"github.com/junerver/prompt-keeper/internal/workers"
	"github.com/junerver/prompt-keeper/models"
)

func newServeCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server exposing prompt tools and published prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetServerConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cfg.App.Version == "" {
				cfg.App.Version = buildInfo.BuildVersion()
			}
			if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
				return err
			}

			// stdout carries the protocol on the stdio transport
			log := logger.NewLogger("server")
			if cfg.Listener.Transport == config.TransportStdio {
				log = newLogger("server")
			}
			log.Debug().
				Str("transport", cfg.Listener.Transport).
				Str("address", cfg.Listener.Address).
				Str("backend", cfg.Adapter.BaseURL).
				Msg("received configs")

			return runServer(cmd.Context(), *cfg, log)
		},
	}
}

func runServer(ctx context.Context, cfg config.ServerConfig, log *logger.Logger) error {
	app, err := client.NewApp(ctx, cfg.ClientConfig, client.Options{WithSnapshots: true}, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	defer app.Close()

	mcpServer := mcp.NewServer(app.Services.PromptService, app.Services.SnapshotService, cfg.App.Version, log)

	if n, err := mcpServer.RefreshPrompts(ctx); err != nil {
		log.Warn().Err(err).Msg("initial prompt publishing failed; the refresh job will retry")
	} else {
		log.Info().Int("published", n).Msg("prompts published")
	}

	jobs := &workers.Workers{}
	jobs.Add(workers.NewJob("prompt-refresh", func(ctx context.Context) error {
		_, err := mcpServer.RefreshPrompts(ctx)
		return err
	}, log), cfg.Workers.RefreshInterval)

	jobs.Add(workers.NewJob("prompt-backup", func(ctx context.Context) error {
		_, err := app.Services.SnapshotService.Backup(ctx)
		return err
	}, log), cfg.Workers.BackupInterval)

	var router http.Handler
	if cfg.Listener.Transport != config.TransportStdio {
		router = httphandler.NewHandler(app.Services, mcpServer, cfg, log).Init()
	}

	srv, err := server.NewServer(router, mcpServer, jobs, cfg.Listener, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.Run(ctx)
}
