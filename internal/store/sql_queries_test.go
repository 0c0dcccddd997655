package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junerver/prompt-keeper/migrations"
	"github.com/junerver/prompt-keeper/models"
)

func Test_buildInsertSnapshotQuery_Placeholders(t *testing.T) {
	s := models.Snapshot{ID: "id", Source: "src", Count: 3, CreatedAt: time.Unix(0, 0)}

	tests := []struct {
		dialect string
		want    string
	}{
		{migrations.DialectSQLite, "INSERT INTO snapshots (id,source,prompt_count,created_at) VALUES (?,?,?,?)"},
		{migrations.DialectPostgres, "INSERT INTO snapshots (id,source,prompt_count,created_at) VALUES ($1,$2,$3,$4)"},
	}
	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			query, args, err := buildInsertSnapshotQuery(statementBuilder(tt.dialect), s)
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"id", "src", 3, time.Unix(0, 0)}, args)
		})
	}
}

func Test_buildInsertSnapshotPromptsQueries_Chunks(t *testing.T) {
	prompts := make([]models.Prompt, promptInsertChunk+3)
	for i := range prompts {
		prompts[i] = models.Prompt{ID: int64(i + 1), Content: fmt.Sprintf("prompt %d", i)}
	}

	queries, err := buildInsertSnapshotPromptsQueries(statementBuilder(migrations.DialectPostgres), "snap", prompts)
	require.NoError(t, err)
	require.Len(t, queries, 2)

	_, firstArgs, err := queries[0].ToSql()
	require.NoError(t, err)
	assert.Len(t, firstArgs, promptInsertChunk*4)

	query, args, err := queries[1].ToSql()
	require.NoError(t, err)
	require.Len(t, args, 3*4)
	assert.True(t, strings.HasPrefix(query, "INSERT INTO snapshot_prompts (snapshot_id,position,prompt_id,payload)"))
	// positions continue across chunks
	assert.Equal(t, promptInsertChunk, args[1])
	assert.Equal(t, int64(promptInsertChunk+1), args[2])
	assert.Contains(t, args[3], `"content":"prompt 500"`)
}

func Test_buildInsertSnapshotPromptsQueries_Empty(t *testing.T) {
	queries, err := buildInsertSnapshotPromptsQueries(statementBuilder(migrations.DialectSQLite), "snap", nil)
	require.NoError(t, err)
	assert.Empty(t, queries)
}

func Test_buildSelectSnapshotPromptsQuery(t *testing.T) {
	query, args, err := buildSelectSnapshotPromptsQuery(statementBuilder(migrations.DialectSQLite), "snap")
	require.NoError(t, err)
	assert.Equal(t, "SELECT payload FROM snapshot_prompts WHERE snapshot_id = ? ORDER BY position", query)
	assert.Equal(t, []any{"snap"}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	b := statementBuilder(migrations.DialectPostgres)

	query, args, err := buildDeleteSnapshotPromptsQuery(b, "snap")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM snapshot_prompts WHERE snapshot_id = $1", query)
	assert.Equal(t, []any{"snap"}, args)

	query, _, err = buildDeleteSnapshotQuery(b, "snap")
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM snapshots WHERE id = $1", query)
}
