package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/models"
)

type fakeBrowser struct {
	err   error
	calls int
}

func (f *fakeBrowser) Browse(context.Context) error {
	f.calls++
	return f.err
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/system/prompt/list":
			_, _ = w.Write([]byte(`{"code":200,"msg":"ok","data":{"total":1,"rows":[{"id":7,"content":"hello","enabled":1}]}}`))
		default:
			_, _ = w.Write([]byte(`{"code":200,"msg":"ok"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewApp_WithoutSnapshots(t *testing.T) {
	backend := newBackend(t)

	app, err := NewApp(context.Background(), config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: backend.URL},
	}, Options{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	page, err := app.Services.PromptService.List(context.Background(), models.PromptQuery{PageNum: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Rows, 1)
	assert.EqualValues(t, 7, page.Rows[0].ID)

	_, err = app.Snapshots()
	assert.ErrorIs(t, err, ErrSnapshotsDisabled)
}

func TestNewApp_WithSnapshots(t *testing.T) {
	backend := newBackend(t)
	dsn := filepath.Join(t.TempDir(), "snapshots.db")

	app, err := NewApp(context.Background(), config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: backend.URL},
		Storage: config.ClientStorage{DB: config.ClientDB{DSN: dsn}},
	}, Options{WithSnapshots: true}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	snapshots, err := app.Snapshots()
	require.NoError(t, err)

	snapshot, err := snapshots.Backup(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Count)
	assert.Equal(t, backend.URL, snapshot.Source)

	list, err := snapshots.Snapshots(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, snapshot.ID, list[0].ID)
}

func TestNewApp_InvalidBaseURL(t *testing.T) {
	_, err := NewApp(context.Background(), config.ClientConfig{}, Options{}, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Browse(t *testing.T) {
	backend := newBackend(t)
	app, err := NewApp(context.Background(), config.ClientConfig{
		Adapter: config.ClientAdapter{BaseURL: backend.URL},
	}, Options{}, logger.Nop())
	require.NoError(t, err)

	ui := &fakeBrowser{}
	require.NoError(t, app.Browse(context.Background(), ui))
	assert.Equal(t, 1, ui.calls)

	ui.err = errors.New("terminal gone")
	err = app.Browse(context.Background(), ui)
	assert.ErrorContains(t, err, "prompt browser: terminal gone")
}
