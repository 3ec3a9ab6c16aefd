package models

import "github.com/golang-jwt/jwt/v5"

// TokenPayload is the identity carried inside a signed token.
//
// UserID is serialized as the custom "userId" claim; the embedded
// [jwt.RegisteredClaims] supply "iss", "iat" and "exp". Handlers receive a
// TokenPayload from the request context after the auth guard admitted the
// request.
type TokenPayload struct {
	// UserID identifies the authenticated user.
	UserID string `json:"userId"`

	jwt.RegisteredClaims
}

// Identity returns a copy of the payload without the registered claims,
// the shape handed to downstream handlers.
func (p TokenPayload) Identity() TokenPayload {
	return TokenPayload{UserID: p.UserID}
}

// TokenResponse is the body returned by the register and login endpoints.
type TokenResponse struct {
	Token string `json:"token"`
}
