// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
	"github.com/MKhiriev/go-auth-guard/models"
)

const bearerScheme = "Bearer"

// credentialService is the concrete implementation of CredentialService.
// Passwords are hashed with bcrypt and tokens are HS256 JWTs.
type credentialService struct {
	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in, and required from, every token.
	tokenIssuer string

	// tokenDuration controls how long a newly issued token remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt work factor.
	passwordHashCost int

	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService from the security
// parameters in cfg. The values are copied; later changes to cfg have no
// effect on the returned service.
func NewCredentialService(cfg config.App, logger *logger.Logger) CredentialService {
	return &credentialService{
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

func (c *credentialService) HashPassword(ctx context.Context, password string) (string, error) {
	hashed, err := utils.HashPassword(password, c.passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return hashed, nil
}

// ComparePassword returns false both on mismatch and on a stored hash bcrypt
// cannot parse. The latter points at corrupted data and is logged.
func (c *credentialService) ComparePassword(ctx context.Context, candidate, hashed string) bool {
	err := utils.ComparePassword(candidate, hashed)
	switch {
	case err == nil:
		return true
	case errors.Is(err, utils.ErrPasswordMismatch):
		return false
	default:
		logger.FromContext(ctx).Warn().Err(err).Msg("stored password hash is malformed")
		return false
	}
}

func (c *credentialService) GenerateToken(ctx context.Context, payload models.TokenPayload) (string, error) {
	token, err := utils.GenerateJWTToken(payload, c.tokenIssuer, c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (c *credentialService) DecodeToken(ctx context.Context, token string) (models.TokenPayload, error) {
	payload, err := utils.ValidateAndParseJWTToken(token, c.tokenSignKey, c.tokenIssuer)
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return payload, nil
}

// ExtractTokenFromHeader accepts exactly "Bearer <token>". The scheme is
// case-sensitive and the token must be non-empty.
func (c *credentialService) ExtractTokenFromHeader(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme || token == "" {
		return "", false
	}

	return token, true
}
