package service

import "errors"

var (
	// ErrInvalidToken is returned by DecodeToken for a malformed, expired or
	// wrongly signed token. The jwt cause is wrapped alongside it.
	ErrInvalidToken = errors.New("invalid token")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrHashingPassword     = errors.New("error hashing password")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Messages of the domain errors produced by AuthService.
const (
	MessageLoginAlreadyExists     = "login already exists"
	MessageInvalidLoginOrPassword = "invalid login or password"
	MessageUserNotFound           = "user not found"
	MessagePasswordTooLong        = "password must be at most 72 bytes long"
)
