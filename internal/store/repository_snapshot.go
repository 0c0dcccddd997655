package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/models"
)

type snapshotRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSnapshotRepository returns a [SnapshotRepository] backed by db.
func NewSnapshotRepository(db *DB, log *logger.Logger) SnapshotRepository {
	if log == nil {
		log = logger.Nop()
	}
	return &snapshotRepository{db: db, logger: log}
}

func (r *snapshotRepository) CreateSnapshot(ctx context.Context, snapshot models.Snapshot, prompts []models.Prompt) error {
	log := r.logger
	b := r.db.Builder()

	query, args, err := buildInsertSnapshotQuery(b, snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	promptQueries, err := buildInsertSnapshotPromptsQueries(b, snapshot.ID, prompts)
	if err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "snapshotRepository.CreateSnapshot").Msg("error beginning transaction")
		return r.db.wrapDriverError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrSnapshotExists, snapshot.ID)
		}
		log.Err(err).Str("func", "snapshotRepository.CreateSnapshot").Msg("error inserting snapshot")
		return r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	for _, q := range promptQueries {
		query, args, err = q.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "snapshotRepository.CreateSnapshot").Msg("error inserting snapshot prompts")
			return r.db.wrapDriverError(ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "snapshotRepository.CreateSnapshot").Msg("error committing transaction")
		return r.db.wrapDriverError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("snapshot_id", snapshot.ID).Int("prompts", len(prompts)).Msg("snapshot saved")
	return nil
}

func (r *snapshotRepository) ListSnapshots(ctx context.Context) ([]models.Snapshot, error) {
	query, args, err := buildSelectSnapshotsQuery(r.db.Builder())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	snapshots := make([]models.Snapshot, 0)
	for rows.Next() {
		var s models.Snapshot
		if err = rows.Scan(&s.ID, &s.Source, &s.Count, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		snapshots = append(snapshots, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) GetSnapshotPrompts(ctx context.Context, id string) ([]models.Prompt, error) {
	b := r.db.Builder()

	if err := r.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	query, args, err := buildSelectSnapshotPromptsQuery(b, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrapDriverError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	prompts := make([]models.Prompt, 0)
	for rows.Next() {
		var payload string
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		var p models.Prompt
		if err = json.Unmarshal([]byte(payload), &p); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPrompt, err)
		}
		prompts = append(prompts, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return prompts, nil
}

func (r *snapshotRepository) DeleteSnapshot(ctx context.Context, id string) error {
	b := r.db.Builder()

	promptsQuery, promptsArgs, err := buildDeleteSnapshotPromptsQuery(b, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	query, args, err := buildDeleteSnapshotQuery(b, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return r.db.wrapDriverError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.ExecContext(ctx, promptsQuery, promptsArgs...); err != nil {
		return r.db.wrapDriverError(ErrExecutingStatement, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return r.db.wrapDriverError(ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}

	if err = tx.Commit(); err != nil {
		return r.db.wrapDriverError(ErrCommitingTransaction, err)
	}
	return nil
}

func (r *snapshotRepository) ensureExists(ctx context.Context, id string) error {
	query, args, err := buildCountSnapshotQuery(r.db.Builder(), id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) || (err == nil && count == 0) {
		return fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}
	if err != nil {
		return r.db.wrapDriverError(ErrExecutingQuery, err)
	}
	return nil
}
