package http

import (
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/internal/validators"
)

type Handler struct {
	services  *service.Services
	guard     *AuthGuard
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, validator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		guard:     NewAuthGuard(services.CredentialService),
		validator: validator,
		logger:    logger,
	}
}
