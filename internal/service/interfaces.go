package service

import (
	"context"

	"github.com/junerver/prompt-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PromptService is the typed layer above the Prompt API client used by every
// surface (CLI, MCP server, terminal browser). It decodes the backend
// envelopes and wraps failures with the operation name; errors keep the
// transport sentinels so callers can match them with errors.Is.
type PromptService interface {
	// List returns one page of prompts matching query.
	List(ctx context.Context, query models.PromptQuery) (models.PromptPage, error)

	// ListAll walks every page of query and returns all matching prompts.
	// query.PageNum is ignored; query.PageSize defaults to [DefaultPageSize].
	ListAll(ctx context.Context, query models.PromptQuery) ([]models.Prompt, error)

	// Get returns the prompt with id or [ErrPromptNotFound].
	Get(ctx context.Context, id int64) (models.Prompt, error)

	// Add creates prompt on the backend.
	Add(ctx context.Context, prompt models.Prompt) error

	// Update replaces the backend record identified by prompt.ID.
	Update(ctx context.Context, prompt models.Prompt) error

	// Delete removes the prompt with id.
	Delete(ctx context.Context, id int64) error

	// BatchDelete removes every prompt in ids with a single call.
	BatchDelete(ctx context.Context, ids []int64) error

	// Export returns the spreadsheet the backend renders for query.
	Export(ctx context.Context, query models.PromptQuery) ([]byte, error)
}

// SnapshotService stores point-in-time copies of every backend prompt in the
// local snapshot store and re-creates prompts from them.
type SnapshotService interface {
	// Backup lists every prompt and stores them as a new snapshot.
	Backup(ctx context.Context) (models.Snapshot, error)

	// Restore re-adds every prompt of snapshot id through the backend.
	// Server-managed fields are cleared so the backend assigns new ids. With
	// dryRun set nothing is sent and the report tells what would be restored.
	Restore(ctx context.Context, id string, dryRun bool) (models.RestoreReport, error)

	// Snapshots lists stored snapshots, newest first.
	Snapshots(ctx context.Context) ([]models.Snapshot, error)

	// DeleteSnapshot removes snapshot id and its prompts.
	DeleteSnapshot(ctx context.Context, id string) error
}

// AppInfoService reports build and runtime information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
