package service

import (
	"context"
	"fmt"
	"time"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/store"
	"github.com/junerver/prompt-keeper/models"
)

type idGenerator interface {
	Generate() string
}

type snapshotService struct {
	prompts PromptService
	repo    store.SnapshotRepository
	ids     idGenerator
	source  string
	now     func() time.Time

	logger *logger.Logger
}

func NewSnapshotService(prompts PromptService, repo store.SnapshotRepository, ids idGenerator, source string, logger *logger.Logger) SnapshotService {
	return &snapshotService{
		prompts: prompts,
		repo:    repo,
		ids:     ids,
		source:  source,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *snapshotService) Backup(ctx context.Context) (models.Snapshot, error) {
	prompts, err := s.prompts.ListAll(ctx, models.PromptQuery{})
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("backup: %w", err)
	}

	snapshot := models.Snapshot{
		ID:        s.ids.Generate(),
		Source:    s.source,
		Count:     len(prompts),
		CreatedAt: s.now().UTC(),
	}

	if err = s.repo.CreateSnapshot(ctx, snapshot, prompts); err != nil {
		return models.Snapshot{}, fmt.Errorf("backup: save snapshot: %w", err)
	}

	s.logger.Info().Str("snapshot_id", snapshot.ID).Int("count", snapshot.Count).Msg("snapshot stored")

	return snapshot, nil
}

func (s *snapshotService) Restore(ctx context.Context, id string, dryRun bool) (models.RestoreReport, error) {
	prompts, err := s.repo.GetSnapshotPrompts(ctx, id)
	if err != nil {
		return models.RestoreReport{}, fmt.Errorf("restore %s: %w", id, err)
	}

	report := models.RestoreReport{SnapshotID: id, Total: len(prompts), DryRun: dryRun}
	for _, p := range prompts {
		if err = ctx.Err(); err != nil {
			return report, fmt.Errorf("restore %s: %w", id, err)
		}

		if dryRun {
			report.Restored++
			continue
		}

		if err = s.prompts.Add(ctx, asNewPrompt(p)); err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("prompt %d: %v", p.ID, err))
			s.logger.Warn().Err(err).Int64("prompt_id", p.ID).Msg("restore prompt failed")
			continue
		}
		report.Restored++
	}

	return report, nil
}

func (s *snapshotService) Snapshots(ctx context.Context) ([]models.Snapshot, error) {
	snapshots, err := s.repo.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

func (s *snapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	if err := s.repo.DeleteSnapshot(ctx, id); err != nil {
		return fmt.Errorf("delete snapshot %s: %w", id, err)
	}
	return nil
}

// asNewPrompt keeps the user-owned fields only.
func asNewPrompt(p models.Prompt) models.Prompt {
	return models.Prompt{
		Content: p.Content,
		Enabled: p.Enabled,
		Remark:  p.Remark,
	}
}
