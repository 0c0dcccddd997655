package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/utils"
)

func newTokenCommand() *cobra.Command {
	var clientName string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the MCP HTTP transports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.GetAuthConfig(cmd.Flags())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			token, err := utils.GenerateJWTToken(cfg.Issuer, clientName, cfg.TokenDuration, cfg.SignKey)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires at %s\n", token.ExpiresAt.Time.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&clientName, "client", "mcp-client", "Client name stored as the token subject")

	return cmd
}
