package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyUserID is returned when a token is generated for, or decodes to,
// an empty user identifier.
var ErrEmptyUserID = errors.New("empty userId in token payload")

// GenerateJWTToken creates a signed HMAC-SHA256 JWT carrying payload.
//
// The token includes the following claims:
//   - userId: payload.UserID
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): payload.UserID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// issuer, signKey and a non-zero tokenDuration are required. A negative
// tokenDuration yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(models.TokenPayload{UserID: "42"}, "my-service", time.Hour, "secret")
func GenerateJWTToken(payload models.TokenPayload, issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return "", errors.New("invalid params for generating JWT Token")
	}
	if payload.UserID == "" {
		return "", ErrEmptyUserID
	}

	now := time.Now()
	claims := &models.TokenPayload{
		UserID: payload.UserID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   payload.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its payload.
//
// Validation includes:
//   - Signature verification with signKey; only HS256 is accepted
//   - Issuer (iss) claim check against issuer
//   - Expiration (exp) claim presence and check
//   - userId claim presence
//
// Errors from the jwt library are wrapped, so callers can match them with
// errors.Is (e.g. jwt.ErrTokenExpired, jwt.ErrTokenSignatureInvalid).
//
// Example usage:
//
//	payload, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "my-service")
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.TokenPayload, error) {
	claims := &models.TokenPayload{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return models.TokenPayload{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID == "" {
		return models.TokenPayload{}, ErrEmptyUserID
	}

	return *claims, nil
}
