package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-auth-guard/models"
)

// CredentialService hashes and verifies passwords and issues and verifies
// signed bearer tokens. Implementations hold only read-only configuration and
// are safe for concurrent use.
type CredentialService interface {
	// HashPassword returns the salted one-way hash of password.
	HashPassword(ctx context.Context, password string) (string, error)

	// ComparePassword reports whether candidate matches hashed. A malformed
	// hash never matches.
	ComparePassword(ctx context.Context, candidate, hashed string) bool

	// GenerateToken signs payload into a token that expires after the
	// configured duration.
	GenerateToken(ctx context.Context, payload models.TokenPayload) (string, error)

	// DecodeToken verifies token and returns its payload, or an error
	// matching ErrInvalidToken.
	DecodeToken(ctx context.Context, token string) (models.TokenPayload, error)

	// ExtractTokenFromHeader returns the token of an "Authorization: Bearer
	// <token>" header. ok is false for a missing header or any other scheme.
	ExtractTokenFromHeader(r *http.Request) (token string, ok bool)
}

// AuthService implements the account flows built on top of CredentialService.
// Errors returned by its methods are already classified with apperror.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (string, error)
	Me(ctx context.Context, userID string) (models.User, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// IDGenerator issues identifiers for new accounts.
type IDGenerator interface {
	Generate() string
}
