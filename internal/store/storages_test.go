package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/models"
)

func Test_isPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost:5432/db"))
	assert.True(t, isPostgresDSN("PostgreSQL://localhost/db"))
	assert.False(t, isPostgresDSN("promptkeeper.db"))
	assert.False(t, isPostgresDSN("file:promptkeeper.db?cache=shared"))
}

func TestNewStorages_UnsupportedScheme(t *testing.T) {
	_, err := NewStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: "mysql://root@localhost/prompts"},
	}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

func TestNewStorages_SQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "snapshots.db")
	ctx := context.Background()

	storages, err := NewStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	_, err = os.Stat(dsn)
	require.NoError(t, err)

	repo := storages.SnapshotRepository
	older := models.Snapshot{ID: "a", Source: "http://backend", Count: 2, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	newer := models.Snapshot{ID: "b", Source: "http://backend", Count: 0, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)}

	require.NoError(t, repo.CreateSnapshot(ctx, older, testPrompts()))
	require.NoError(t, repo.CreateSnapshot(ctx, newer, nil))

	err = repo.CreateSnapshot(ctx, older, nil)
	assert.ErrorIs(t, err, ErrSnapshotExists)

	list, err := repo.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)
	assert.True(t, older.CreatedAt.Equal(list[1].CreatedAt))

	prompts, err := repo.GetSnapshotPrompts(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, testPrompts(), prompts)

	empty, err := repo.GetSnapshotPrompts(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.DeleteSnapshot(ctx, "a"))
	_, err = repo.GetSnapshotPrompts(ctx, "a")
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
	assert.ErrorIs(t, repo.DeleteSnapshot(ctx, "a"), ErrSnapshotNotFound)
}

func TestErrorClassifiers(t *testing.T) {
	pg := NewPostgresErrorClassifier()
	assert.Equal(t, Retryable, pg.Classify(pgError(pgerrcode.DeadlockDetected)))
	assert.Equal(t, NonRetryable, pg.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.Equal(t, NonRetryable, pg.Classify(errors.New("plain")))
	assert.Equal(t, NonRetryable, pg.Classify(nil))

	lite := NewSQLiteErrorClassifier()
	assert.Equal(t, Retryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrBusy}))
	assert.Equal(t, NonRetryable, lite.Classify(sqlite3.Error{Code: sqlite3.ErrConstraint}))
	assert.Equal(t, NonRetryable, lite.Classify(errors.New("plain")))
}

func Test_isUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.True(t, isUniqueViolation(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
	assert.False(t, isUniqueViolation(errors.New("plain")))
}
