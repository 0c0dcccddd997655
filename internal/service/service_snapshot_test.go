package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/mock"
	"github.com/junerver/prompt-keeper/internal/store"
	"github.com/junerver/prompt-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedID string

func (f fixedID) Generate() string { return string(f) }

func newTestSnapshotSvc(t *testing.T) (*snapshotService, *mock.MockPromptService, *mock.MockSnapshotRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	prompts := mock.NewMockPromptService(ctrl)
	repo := mock.NewMockSnapshotRepository(ctrl)

	svc := NewSnapshotService(prompts, repo, fixedID("snap-1"), "http://backend", logger.Nop()).(*snapshotService)
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("CST", 8*3600)) }
	return svc, prompts, repo
}

// ── Backup ───────────────────────────────────────────────────────────────────

func TestSnapshotService_Backup_Success(t *testing.T) {
	svc, prompts, repo := newTestSnapshotSvc(t)
	ctx := context.Background()
	rows := []models.Prompt{{ID: 1, Content: "a"}, {ID: 2, Content: "b"}}

	want := models.Snapshot{
		ID:        "snap-1",
		Source:    "http://backend",
		Count:     2,
		CreatedAt: time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC),
	}

	prompts.EXPECT().ListAll(ctx, models.PromptQuery{}).Return(rows, nil)
	repo.EXPECT().CreateSnapshot(ctx, want, rows).Return(nil)

	got, err := svc.Backup(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSnapshotService_Backup_ListError(t *testing.T) {
	svc, prompts, _ := newTestSnapshotSvc(t)

	prompts.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	_, err := svc.Backup(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestSnapshotService_Backup_StoreError(t *testing.T) {
	svc, prompts, repo := newTestSnapshotSvc(t)

	prompts.EXPECT().ListAll(gomock.Any(), gomock.Any()).Return(nil, nil)
	repo.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrSnapshotExists)

	_, err := svc.Backup(context.Background())
	assert.ErrorIs(t, err, store.ErrSnapshotExists)
}

// ── Restore ──────────────────────────────────────────────────────────────────

func TestSnapshotService_Restore_ReAddsWithoutServerFields(t *testing.T) {
	svc, prompts, repo := newTestSnapshotSvc(t)
	ctx := context.Background()

	stored := []models.Prompt{
		{ID: 1, Content: "a", Enabled: models.EnabledFlag(true), CreateBy: "admin", CreateTime: "2026-01-01 00:00:00", Remark: "r"},
		{ID: 2, Content: "b", DelFlag: "0", UpdateBy: "admin"},
	}

	repo.EXPECT().GetSnapshotPrompts(ctx, "snap-1").Return(stored, nil)
	gomock.InOrder(
		prompts.EXPECT().Add(ctx, models.Prompt{Content: "a", Enabled: models.EnabledFlag(true), Remark: "r"}).Return(nil),
		prompts.EXPECT().Add(ctx, models.Prompt{Content: "b"}).Return(errors.New("duplicate")),
	)

	report, err := svc.Restore(ctx, "snap-1", false)
	require.NoError(t, err)

	assert.Equal(t, "snap-1", report.SnapshotID)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Restored)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "prompt 2")
	assert.False(t, report.DryRun)
}

func TestSnapshotService_Restore_DryRunSendsNothing(t *testing.T) {
	svc, _, repo := newTestSnapshotSvc(t)

	repo.EXPECT().GetSnapshotPrompts(gomock.Any(), "snap-1").Return([]models.Prompt{{ID: 1}, {ID: 2}, {ID: 3}}, nil)

	report, err := svc.Restore(context.Background(), "snap-1", true)
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, 3, report.Restored)
	assert.Zero(t, report.Failed)
}

func TestSnapshotService_Restore_UnknownSnapshot(t *testing.T) {
	svc, _, repo := newTestSnapshotSvc(t)

	repo.EXPECT().GetSnapshotPrompts(gomock.Any(), "nope").Return(nil, store.ErrSnapshotNotFound)

	_, err := svc.Restore(context.Background(), "nope", false)
	assert.ErrorIs(t, err, store.ErrSnapshotNotFound)
}

func TestSnapshotService_Restore_CancelledContext(t *testing.T) {
	svc, _, repo := newTestSnapshotSvc(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	repo.EXPECT().GetSnapshotPrompts(gomock.Any(), "snap-1").Return([]models.Prompt{{ID: 1}}, nil)

	report, err := svc.Restore(ctx, "snap-1", false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, report.Restored)
}

// ── Snapshots / DeleteSnapshot ───────────────────────────────────────────────

func TestSnapshotService_SnapshotsAndDelete(t *testing.T) {
	svc, _, repo := newTestSnapshotSvc(t)
	ctx := context.Background()
	list := []models.Snapshot{{ID: "b"}, {ID: "a"}}

	repo.EXPECT().ListSnapshots(ctx).Return(list, nil)
	repo.EXPECT().DeleteSnapshot(ctx, "a").Return(store.ErrSnapshotNotFound)

	got, err := svc.Snapshots(ctx)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	assert.ErrorIs(t, svc.DeleteSnapshot(ctx, "a"), store.ErrSnapshotNotFound)
}
