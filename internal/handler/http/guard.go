// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/service"
	"github.com/MKhiriev/go-auth-guard/models"
)

// AuthGuard decides whether a request carries a valid bearer token.
type AuthGuard struct {
	credentials service.CredentialService
}

// NewAuthGuard returns an AuthGuard verifying tokens with credentials.
func NewAuthGuard(credentials service.CredentialService) *AuthGuard {
	return &AuthGuard{credentials: credentials}
}

// Authenticate returns the identity of the token in r's Authorization header.
//
// A missing header, a scheme other than "Bearer", and a token that fails
// verification for any reason all yield the same [apperror.Unauthorized]
// error. The verification failure is kept as its cause for logging only.
//
// r is never modified; threading the identity into the request context is
// left to the caller.
func (g *AuthGuard) Authenticate(r *http.Request) (models.TokenPayload, error) {
	token, ok := g.credentials.ExtractTokenFromHeader(r)
	if !ok {
		return models.TokenPayload{}, apperror.Unauthorized()
	}

	payload, err := g.credentials.DecodeToken(r.Context(), token)
	if err != nil {
		return models.TokenPayload{}, apperror.Unauthorized().WithCause(err)
	}

	return payload.Identity(), nil
}
