package main

import (
	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/client"
	"github.com/junerver/prompt-keeper/internal/tui"
	"github.com/junerver/prompt-keeper/models"
)

func newBrowseCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	var pageSize int

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse prompts in an interactive terminal UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			ui := tui.New(app.Services.PromptService, buildInfo, pageSize, newLogger("tui"))
			return app.Browse(cmd.Context(), ui)
		},
	}

	cmd.Flags().IntVar(&pageSize, "size", tui.DefaultPageSize, "Prompts per page")

	return cmd
}
