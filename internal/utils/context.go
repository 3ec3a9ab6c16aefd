// Package utils provides general-purpose helper utilities
// used across different parts of the server.
// Includes tools for working with context, type-safe keys, password
// hashing, JSON response writing, JWT token generation and validation,
// and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-guard/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key under which the auth middleware stores the
// authenticated [models.TokenPayload].
var UserCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated identity.
func WithUser(ctx context.Context, user models.TokenPayload) context.Context {
	return context.WithValue(ctx, UserCtxKey, user)
}

// UserFromContext retrieves the authenticated identity from the context.
//
// Returns ok == false when no identity is set, which on a protected route
// means the request bypassed the auth middleware.
//
// Example usage:
//
//	user, ok := utils.UserFromContext(ctx)
//	if !ok {
//	    // handle missing user in context
//	}
func UserFromContext(ctx context.Context) (models.TokenPayload, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.TokenPayload)
	return user, ok
}
