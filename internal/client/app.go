package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/junerver/prompt-keeper/internal/adapter"
	"github.com/junerver/prompt-keeper/internal/config"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/service"
	"github.com/junerver/prompt-keeper/internal/store"
	"github.com/junerver/prompt-keeper/internal/transport"
)

// ErrSnapshotsDisabled is returned by snapshot operations of an [App]
// opened without a snapshot store.
var ErrSnapshotsDisabled = errors.New("snapshot store is not opened")

// Options selects the optional parts of an [App].
type Options struct {
	// WithSnapshots opens the snapshot store from the storage config.
	WithSnapshots bool
}

// App is the per-invocation runtime of promptctl.
type App struct {
	Requester *transport.HTTPRequester
	Services  *service.Services

	storages *store.Storages
	logger   *logger.Logger
}

// NewApp builds the request utility from cfg.Adapter and wires the services
// on top of it. The snapshot store is opened (and migrated) only when
// opts.WithSnapshots is set.
func NewApp(ctx context.Context, cfg config.ClientConfig, opts Options, log *logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}

	requester, err := transport.NewHTTPRequester(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create request utility: %w", err)
	}

	if claims, err := requester.Claims(); err == nil && claims.ExpiresAt != nil {
		log.Debug().Time("expires_at", claims.ExpiresAt.Time).Msg("backend token expiry")
	}

	var storages *store.Storages
	if opts.WithSnapshots {
		storages, err = store.NewStorages(ctx, cfg.Storage, log)
		if err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
	}

	services := service.NewServices(adapter.NewPromptAPI(requester), storages, cfg.Adapter.BaseURL, cfg.App.Version, log)

	return &App{
		Requester: requester,
		Services:  services,
		storages:  storages,
		logger:    log,
	}, nil
}

// Snapshots returns the snapshot service or [ErrSnapshotsDisabled].
func (a *App) Snapshots() (service.SnapshotService, error) {
	if a.Services.SnapshotService == nil {
		return nil, ErrSnapshotsDisabled
	}
	return a.Services.SnapshotService, nil
}

// Browse runs ui until the user quits it.
func (a *App) Browse(ctx context.Context, ui Browser) error {
	a.logger.Info().Msg("starting prompt browser")
	if err := ui.Browse(ctx); err != nil {
		return fmt.Errorf("prompt browser: %w", err)
	}
	return nil
}

// Close releases the snapshot store, if opened.
func (a *App) Close() error {
	return a.storages.Close()
}
