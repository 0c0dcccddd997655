package service

import (
	"context"

	"github.com/junerver/prompt-keeper/internal/logger"
)

type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService reporting version, or "N/A"
// when the build carries none.
func NewAppInfoService(version string, logger *logger.Logger) AppInfoService {
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		appVersion: version,
		logger:     logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
