package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/client"
	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/models"
)

// newLogger builds the logger of commands that own stdout.
var newLogger = logger.NewClientLogger

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Manage AI prompts of a prompt-management backend",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       buildInfo.BuildVersion(),
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newListCommand(),
		newGetCommand(),
		newAddCommand(),
		newUpdateCommand(),
		newDeleteCommand(),
		newBatchDeleteCommand(),
		newExportCommand(),
		newBackupCommand(),
		newSnapshotsCommand(),
		newRestoreCommand(),
		newBrowseCommand(buildInfo),
		newServeCommand(buildInfo),
		newTokenCommand(),
		newVersionCommand(buildInfo),
	)

	return root
}

// openApp loads the client config from cmd's flags and builds the runtime.
// The caller closes the returned app.
func openApp(cmd *cobra.Command, opts client.Options) (*client.App, *config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		return nil, nil, err
	}

	log := newLogger("promptctl")
	log.Debug().Str("command", cmd.Name()).Msg("running command")

	app, err := client.NewApp(cmd.Context(), *cfg, opts, log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return nil, nil, err
	}

	return app, cfg, nil
}
