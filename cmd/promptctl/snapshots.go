package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/client"
)

func newBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Store every prompt as a local snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd, client.Options{WithSnapshots: true})
			if err != nil {
				return err
			}
			defer app.Close()

			snapshots, err := app.Snapshots()
			if err != nil {
				return err
			}

			snapshot, err := snapshots.Backup(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), snapshot)
		},
	}
}

func newSnapshotsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List local snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd, client.Options{WithSnapshots: true})
			if err != nil {
				return err
			}
			defer app.Close()

			snapshots, err := app.Snapshots()
			if err != nil {
				return err
			}

			list, err := snapshots.Snapshots(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), list)
			}

			rows := make([][]string, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{
					s.ID,
					s.CreatedAt.Local().Format(time.DateTime),
					fmt.Sprint(s.Count),
					s.Source,
				})
			}
			return printTable(cmd.OutOrStdout(), []string{"ID", "CREATED", "PROMPTS", "SOURCE"}, rows)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")
	cmd.AddCommand(newSnapshotDeleteCommand())

	return cmd
}

func newSnapshotDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <snapshot-id>",
		Short: "Delete a local snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := openApp(cmd, client.Options{WithSnapshots: true})
			if err != nil {
				return err
			}
			defer app.Close()

			snapshots, err := app.Snapshots()
			if err != nil {
				return err
			}
			if err = snapshots.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "snapshot %s deleted\n", args[0])
			return nil
		},
	}
}

func newRestoreCommand() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "restore <snapshot-id>",
		Short: "Re-create every prompt of a snapshot on the backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := openApp(cmd, client.Options{WithSnapshots: true})
			if err != nil {
				return err
			}
			defer app.Close()

			snapshots, err := app.Snapshots()
			if err != nil {
				return err
			}

			report, err := snapshots.Restore(cmd.Context(), args[0], dryRun)
			if err != nil {
				return err
			}
			if err = printJSON(cmd.OutOrStdout(), report); err != nil {
				return err
			}
			if report.Failed > 0 {
				return fmt.Errorf("%d of %d prompts were not restored", report.Failed, report.Total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be restored without sending anything")

	return cmd
}
