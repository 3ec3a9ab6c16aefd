package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/store"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
)

type Services struct {
	CredentialService CredentialService
	AuthService       AuthService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	credentialService := NewCredentialService(cfg.App, logger)

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		CredentialService: credentialService,
		AuthService:       NewAuthService(storages.UserRepository, credentialService, utils.NewUUIDGenerator(), logger),
		AppInfoService:    appInfoService,
	}, nil
}
