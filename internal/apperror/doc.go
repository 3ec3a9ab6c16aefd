// Package apperror defines the closed set of error kinds that reach the HTTP
// boundary and the total mapping from any error to a normalized response.
//
// Errors are classified explicitly where they originate:
//
//	apperror.Validation("login is required", "password is required")
//	apperror.New(http.StatusNotFound, "user not found")
//	apperror.Unauthorized()
//
// Anything else that reaches [Normalize] is unclassified and becomes a
// generic 500 without leaking its message.
package apperror
