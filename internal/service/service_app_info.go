package service

import (
	"context"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
)

// appInfoService reports the build version served by GET /api/version.
type appInfoService struct {
	appVersion string
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version. Defaults normally fill it with "N/A".
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	logger.Debug().Str("version", cfg.Version).Msg("app info service created")
	return &appInfoService{appVersion: cfg.Version}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
