package service

import (
	"github.com/junerver/prompt-keeper/internal/adapter"
	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/store"
	"github.com/junerver/prompt-keeper/internal/utils"
)

// Services bundles the business services a command needs.
type Services struct {
	PromptService   PromptService
	SnapshotService SnapshotService
	AppInfoService  AppInfoService
}

// NewServices wires the services on top of the Prompt API client. storages
// may be nil for commands that never touch snapshots; SnapshotService is nil
// then. source labels snapshots with the backend they were taken from.
func NewServices(api adapter.PromptAPI, storages *store.Storages, source, version string, logger *logger.Logger) *Services {
	promptSvc := NewPromptService(api, logger)

	services := &Services{
		PromptService:  promptSvc,
		AppInfoService: NewAppInfoService(version, logger),
	}

	if storages != nil {
		services.SnapshotService = NewSnapshotService(promptSvc, storages.SnapshotRepository, utils.IDFunc(utils.NewTimeOrderedID), source, logger)
	}

	return services
}
