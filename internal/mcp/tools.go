package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/junerver/prompt-keeper/models"
)

// Tool names.
const (
	ToolListPrompts        = "list_prompts"
	ToolGetPrompt          = "get_prompt"
	ToolAddPrompt          = "add_prompt"
	ToolUpdatePrompt       = "update_prompt"
	ToolDeletePrompt       = "delete_prompt"
	ToolBatchDeletePrompts = "batch_delete_prompts"
	ToolBackupPrompts      = "backup_prompts"
	ToolListSnapshots      = "list_snapshots"
)

var errMissingArgument = errors.New("missing argument")

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool(ToolListPrompts,
			mcp.WithDescription("List prompts stored on the backend, one page at a time. Set all=true to fetch every page."),
			mcp.WithNumber("pageNum", mcp.Description("Page number, starting at 1")),
			mcp.WithNumber("pageSize", mcp.Description("Rows per page")),
			mcp.WithString("content", mcp.Description("Filter by prompt text (substring match on the backend)")),
			mcp.WithBoolean("enabled", mcp.Description("Filter by enabled flag")),
			mcp.WithString("remark", mcp.Description("Filter by remark")),
			mcp.WithBoolean("all", mcp.Description("Walk every page and return all matching prompts")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.listPromptsHandler(),
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolGetPrompt,
			mcp.WithDescription("Get one prompt by id"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Prompt id")),
			mcp.WithReadOnlyHintAnnotation(true),
		),
		s.getPromptHandler(),
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolAddPrompt,
			mcp.WithDescription("Create a new prompt"),
			mcp.WithString("content", mcp.Required(), mcp.Description("Prompt text")),
			mcp.WithBoolean("enabled", mcp.Description("Whether the prompt is enabled (default true)")),
			mcp.WithString("remark", mcp.Description("Free-form remark")),
		),
		s.addPromptHandler(),
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolUpdatePrompt,
			mcp.WithDescription("Update an existing prompt. Omitted fields are left unchanged."),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Prompt id")),
			mcp.WithString("content", mcp.Description("New prompt text")),
			mcp.WithBoolean("enabled", mcp.Description("New enabled flag")),
			mcp.WithString("remark", mcp.Description("New remark")),
		),
		s.updatePromptHandler(),
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolDeletePrompt,
			mcp.WithDescription("Delete one prompt by id"),
			mcp.WithNumber("id", mcp.Required(), mcp.Description("Prompt id")),
			mcp.WithDestructiveHintAnnotation(true),
		),
		s.deletePromptHandler(),
	)

	s.mcp.AddTool(
		mcp.NewTool(ToolBatchDeletePrompts,
			mcp.WithDescription("Delete several prompts in one call"),
			mcp.WithArray("ids",
				mcp.Required(),
				mcp.Description("Prompt ids"),
				mcp.Items(map[string]any{"type": "number"}),
			),
			mcp.WithDestructiveHintAnnotation(true),
		),
		s.batchDeletePromptsHandler(),
	)

	count := 6
	if s.snapshots != nil {
		s.mcp.AddTool(
			mcp.NewTool(ToolBackupPrompts,
				mcp.WithDescription("Store a snapshot of every backend prompt in the local snapshot store"),
			),
			s.backupHandler(),
		)
		s.mcp.AddTool(
			mcp.NewTool(ToolListSnapshots,
				mcp.WithDescription("List stored prompt snapshots, newest first"),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			s.listSnapshotsHandler(),
		)
		count += 2
	}

	s.logger.Debug().Int("count", count).Msg("registered MCP tools")
}

func (s *Server) listPromptsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		query := models.PromptQuery{
			PageNum:  req.GetInt("pageNum", 0),
			PageSize: req.GetInt("pageSize", 0),
			Content:  req.GetString("content", ""),
			Remark:   req.GetString("remark", ""),
		}
		if enabled, ok := args["enabled"].(bool); ok {
			query.Enabled = models.EnabledFlag(enabled)
		}

		if req.GetBool("all", false) {
			prompts, err := s.prompts.ListAll(ctx, query)
			if err != nil {
				return s.toolError("list prompts", err), nil
			}
			return jsonResult(models.PromptPage{Total: int64(len(prompts)), Rows: prompts})
		}

		page, err := s.prompts.List(ctx, query)
		if err != nil {
			return s.toolError("list prompts", err), nil
		}
		return jsonResult(page)
	}
}

func (s *Server) getPromptHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(req.GetArguments(), "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		prompt, err := s.prompts.Get(ctx, id)
		if err != nil {
			return s.toolError(fmt.Sprintf("get prompt %d", id), err), nil
		}
		return jsonResult(prompt)
	}
}

func (s *Server) addPromptHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		prompt := models.Prompt{
			Content: content,
			Enabled: models.EnabledFlag(req.GetBool("enabled", true)),
			Remark:  req.GetString("remark", ""),
		}
		if err = s.prompts.Add(ctx, prompt); err != nil {
			return s.toolError("add prompt", err), nil
		}
		return mcp.NewToolResultText("prompt added"), nil
	}
}

func (s *Server) updatePromptHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		id, err := requireID(args, "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		prompt := models.Prompt{
			ID:      id,
			Content: req.GetString("content", ""),
			Remark:  req.GetString("remark", ""),
		}
		if enabled, ok := args["enabled"].(bool); ok {
			prompt.Enabled = models.EnabledFlag(enabled)
		}

		if err = s.prompts.Update(ctx, prompt); err != nil {
			return s.toolError(fmt.Sprintf("update prompt %d", id), err), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("prompt %d updated", id)), nil
	}
}

func (s *Server) deletePromptHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := requireID(req.GetArguments(), "id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err = s.prompts.Delete(ctx, id); err != nil {
			return s.toolError(fmt.Sprintf("delete prompt %d", id), err), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("prompt %d deleted", id)), nil
	}
}

func (s *Server) batchDeletePromptsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := requireIDs(req.GetArguments(), "ids")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		if err = s.prompts.BatchDelete(ctx, ids); err != nil {
			return s.toolError("batch delete prompts", err), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%d prompts deleted", len(ids))), nil
	}
}

func (s *Server) backupHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snapshot, err := s.snapshots.Backup(ctx)
		if err != nil {
			return s.toolError("backup prompts", err), nil
		}
		return jsonResult(snapshot)
	}
}

func (s *Server) listSnapshotsHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snapshots, err := s.snapshots.Snapshots(ctx)
		if err != nil {
			return s.toolError("list snapshots", err), nil
		}
		return jsonResult(snapshots)
	}
}

// toolError reports a failed call to the model instead of failing the
// JSON-RPC request.
func (s *Server) toolError(op string, err error) *mcp.CallToolResult {
	s.logger.Err(err).Str("op", op).Msg("tool call failed")
	return mcp.NewToolResultError(fmt.Sprintf("failed to %s: %v", op, err))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}

func requireID(args map[string]any, key string) (int64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s", errMissingArgument, key)
	}
	id, err := toID(v)
	if err != nil {
		return 0, fmt.Errorf("argument %s: %w", key, err)
	}
	return id, nil
}

func requireIDs(args map[string]any, key string) ([]int64, error) {
	raw, ok := args[key].([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%w: %s", errMissingArgument, key)
	}

	ids := make([]int64, 0, len(raw))
	for i, v := range raw {
		id, err := toID(v)
		if err != nil {
			return nil, fmt.Errorf("argument %s[%d]: %w", key, i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// toID accepts JSON numbers and numeric strings.
func toID(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if n != float64(int64(n)) || n <= 0 {
			return 0, fmt.Errorf("invalid id %v", n)
		}
		return int64(n), nil
	case int:
		return toID(float64(n))
	case int64:
		return toID(float64(n))
	case json.Number:
		return parseID(n.String())
	case string:
		return parseID(n)
	default:
		return 0, fmt.Errorf("invalid id type %T", v)
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
