package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/junerver/prompt-keeper/internal/client"
	"github.com/junerver/prompt-keeper/models"
)

var (
	errInvalidID     = errors.New("prompt id must be a positive integer")
	errNoContent     = errors.New("prompt content is empty; use --content or --file")
	errNothingToEdit = errors.New("nothing to update; set --content, --file, --remark, --enable or --disable")
)

type queryFlags struct {
	content string
	enabled bool
	disable bool
	remark  string
	orderBy string
	asc     bool
	desc    bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "Only prompts whose content contains this text")
	cmd.Flags().BoolVar(&f.enabled, "enabled", false, "Only enabled prompts")
	cmd.Flags().BoolVar(&f.disable, "disabled", false, "Only disabled prompts")
	cmd.Flags().StringVar(&f.remark, "remark", "", "Only prompts whose remark contains this text")
	cmd.Flags().StringVar(&f.orderBy, "order-by", "", "Column to order by (e.g. createTime)")
	cmd.Flags().BoolVar(&f.asc, "asc", false, "Ascending order")
	cmd.Flags().BoolVar(&f.desc, "desc", false, "Descending order")
	cmd.MarkFlagsMutuallyExclusive("enabled", "disabled")
	cmd.MarkFlagsMutuallyExclusive("asc", "desc")
}

func (f *queryFlags) query() models.PromptQuery {
	q := models.PromptQuery{
		Content:       f.content,
		Remark:        f.remark,
		OrderByColumn: f.orderBy,
	}
	switch {
	case f.enabled:
		q.Enabled = models.EnabledFlag(true)
	case f.disable:
		q.Enabled = models.EnabledFlag(false)
	}
	switch {
	case f.asc:
		q.IsAsc = "ascending"
	case f.desc:
		q.IsAsc = "descending"
	}
	return q
}

func newListCommand() *cobra.Command {
	var (
		filters  queryFlags
		page     int
		pageSize int
		all      bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			query := filters.query()
			query.PageNum = page
			query.PageSize = pageSize

			prompts := app.Services.PromptService
			if all {
				rows, err := prompts.ListAll(cmd.Context(), query)
				if err != nil {
					return err
				}
				if asJSON {
					return printJSON(cmd.OutOrStdout(), rows)
				}
				return printPromptTable(cmd.OutOrStdout(), rows, int64(len(rows)))
			}

			result, err := prompts.List(cmd.Context(), query)
			if err != nil {
				return err
			}
			if asJSON {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printPromptTable(cmd.OutOrStdout(), result.Rows, result.Total)
		},
	}

	filters.register(cmd)
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "size", 10, "Page size")
	cmd.Flags().BoolVar(&all, "all", false, "Walk every page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	return cmd
}

func newGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			prompt, err := app.Services.PromptService.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), prompt)
		},
	}
}

type contentFlags struct {
	content string
	file    string
}

func (f *contentFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.content, "content", "", "Prompt text")
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Read the prompt text from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

// read returns the prompt text and whether any content flag was set.
func (f *contentFlags) read(cmd *cobra.Command) (string, bool, error) {
	switch {
	case cmd.Flags().Changed("content"):
		return f.content, true, nil
	case f.file == "-":
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", true, fmt.Errorf("read stdin: %w", err)
		}
		return string(b), true, nil
	case f.file != "":
		b, err := os.ReadFile(f.file)
		if err != nil {
			return "", true, fmt.Errorf("read prompt file: %w", err)
		}
		return string(b), true, nil
	}
	return "", false, nil
}

func newAddCommand() *cobra.Command {
	var (
		text     contentFlags
		remark   string
		disabled bool
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, _, err := text.read(cmd)
			if err != nil {
				return err
			}
			if strings.TrimSpace(content) == "" {
				return errNoContent
			}

			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			prompt := models.Prompt{
				Content: content,
				Remark:  remark,
				Enabled: models.EnabledFlag(!disabled),
			}
			if err = app.Services.PromptService.Add(cmd.Context(), prompt); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "prompt added")
			return nil
		},
	}

	text.register(cmd)
	cmd.Flags().StringVar(&remark, "remark", "", "Prompt remark")
	cmd.Flags().BoolVar(&disabled, "disabled", false, "Create the prompt disabled")

	return cmd
}

func newUpdateCommand() *cobra.Command {
	var (
		text    contentFlags
		remark  string
		enable  bool
		disable bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a prompt; fields without a flag keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			content, contentSet, err := text.read(cmd)
			if err != nil {
				return err
			}
			remarkSet := cmd.Flags().Changed("remark")
			if !contentSet && !remarkSet && !enable && !disable {
				return errNothingToEdit
			}

			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			prompts := app.Services.PromptService
			current, err := prompts.Get(cmd.Context(), id)
			if err != nil {
				return err
			}

			update := models.Prompt{
				ID:      id,
				Content: current.Content,
				Remark:  current.Remark,
				Enabled: current.Enabled,
			}
			if contentSet {
				update.Content = content
			}
			if remarkSet {
				update.Remark = remark
			}
			switch {
			case enable:
				update.Enabled = models.EnabledFlag(true)
			case disable:
				update.Enabled = models.EnabledFlag(false)
			}

			if err = prompts.Update(cmd.Context(), update); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "prompt %d updated\n", id)
			return nil
		},
	}

	text.register(cmd)
	cmd.Flags().StringVar(&remark, "remark", "", "New remark")
	cmd.Flags().BoolVar(&enable, "enable", false, "Enable the prompt")
	cmd.Flags().BoolVar(&disable, "disable", false, "Disable the prompt")
	cmd.MarkFlagsMutuallyExclusive("enable", "disable")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			if err = app.Services.PromptService.Delete(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "prompt %d deleted\n", id)
			return nil
		},
	}
}

func newBatchDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch-delete <id>...",
		Short: "Delete several prompts with one request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids = append(ids, id)
			}

			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			if err = app.Services.PromptService.BatchDelete(cmd.Context(), ids); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d prompts deleted\n", len(ids))
			return nil
		},
	}
}

func newExportCommand() *cobra.Command {
	var (
		filters queryFlags
		out     string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the prompt spreadsheet rendered by the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd, client.Options{})
			if err != nil {
				return err
			}
			defer app.Close()

			data, err := app.Services.PromptService.Export(cmd.Context(), filters.query())
			if err != nil {
				return err
			}

			if out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err = os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVarP(&out, "out", "o", "prompts.xlsx", "Output file (- for stdout)")

	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, s)
	}
	return id, nil
}
