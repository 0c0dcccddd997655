package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/junerver/prompt-keeper/models"
)

const (
	snapshotsTable       = "snapshots"
	snapshotPromptsTable = "snapshot_prompts"

	// rows per multi-row INSERT; keeps well under sqlite's bound parameter limit
	promptInsertChunk = 500
)

func buildInsertSnapshotQuery(b sq.StatementBuilderType, s models.Snapshot) (string, []any, error) {
	return b.Insert(snapshotsTable).
		Columns("id", "source", "prompt_count", "created_at").
		Values(s.ID, s.Source, s.Count, s.CreatedAt).
		ToSql()
}

// buildInsertSnapshotPromptsQueries splits prompts into chunked INSERTs.
// Position is the prompt's index in the full slice.
func buildInsertSnapshotPromptsQueries(b sq.StatementBuilderType, snapshotID string, prompts []models.Prompt) ([]sq.InsertBuilder, error) {
	var queries []sq.InsertBuilder
	for start := 0; start < len(prompts); start += promptInsertChunk {
		end := min(start+promptInsertChunk, len(prompts))

		q := b.Insert(snapshotPromptsTable).Columns("snapshot_id", "position", "prompt_id", "payload")
		for i := start; i < end; i++ {
			payload, err := json.Marshal(prompts[i])
			if err != nil {
				return nil, fmt.Errorf("%w: prompt %d: %w", ErrEncodingPrompt, prompts[i].ID, err)
			}
			q = q.Values(snapshotID, i, prompts[i].ID, string(payload))
		}
		queries = append(queries, q)
	}
	return queries, nil
}

func buildSelectSnapshotsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("id", "source", "prompt_count", "created_at").
		From(snapshotsTable).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
}

func buildCountSnapshotQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(snapshotsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectSnapshotPromptsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("payload").
		From(snapshotPromptsTable).
		Where(sq.Eq{"snapshot_id": id}).
		OrderBy("position").
		ToSql()
}

func buildDeleteSnapshotPromptsQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(snapshotPromptsTable).Where(sq.Eq{"snapshot_id": id}).ToSql()
}

func buildDeleteSnapshotQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(snapshotsTable).Where(sq.Eq{"id": id}).ToSql()
}
