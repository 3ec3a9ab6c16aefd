package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/store"
	"github.com/MKhiriev/go-auth-guard/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and token issuance
// using a UserRepository for persistence and a CredentialService for all
// cryptographic work.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// credentials hashes passwords and signs tokens.
	credentials CredentialService

	// ids issues the identifier of every new account.
	ids IDGenerator

	// dummyHash is compared against on unknown logins so they cost as much
	// as a wrong password. Computed on first use at the configured cost.
	dummyHash     string
	dummyHashOnce sync.Once

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repository,
// credential service and id generator.
//
// The returned service is safe for concurrent use.
func NewAuthService(userRepository store.UserRepository, credentials CredentialService, ids IDGenerator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		ids:            ids,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// credentials are expected to be validated by the caller. The password is
// hashed and the account stored under a freshly generated id.
//
// Returns the persisted user or:
//   - a validation error if the password is longer than bcrypt accepts;
//   - domain 409 "login already exists" if the login is taken;
//   - an unclassified error for any other failure.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	hashed, err := a.credentials.HashPassword(ctx, credentials.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, apperror.Validation(MessagePasswordTooLong).WithCause(err)
		}
		log.Err(err).Str("login", credentials.Login).Msg("password hashing failed")
		return models.User{}, apperror.Internal(err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Login:        credentials.Login,
		PasswordHash: hashed,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			log.Info().Str("login", credentials.Login).Msg("login already taken")
			return models.User{}, apperror.Wrap(http.StatusConflict, MessageLoginAlreadyExists, err)
		}
		log.Err(err).Str("login", credentials.Login).Msg("user creation ended with error")
		return models.User{}, apperror.Internal(fmt.Errorf("user creation ended with error: %w", err))
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown login and a wrong password produce the same domain 401 so the
// response does not reveal which logins exist.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByLogin(ctx, credentials.Login)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("login", credentials.Login).Msg("login attempt for unknown user")
			a.compareWithDummyHash(ctx, credentials.Password)
			return models.User{}, apperror.Wrap(http.StatusUnauthorized, MessageInvalidLoginOrPassword, err)
		}
		log.Err(err).Str("login", credentials.Login).Msg("user search by login failed")
		return models.User{}, apperror.Internal(fmt.Errorf("user search by login failed: %w", err))
	}

	if !a.credentials.ComparePassword(ctx, credentials.Password, foundUser.PasswordHash) {
		log.Info().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, apperror.New(http.StatusUnauthorized, MessageInvalidLoginOrPassword)
	}

	return foundUser, nil
}

// dummyPassword seeds the hash unknown logins are compared against.
const dummyPassword = "go-auth-guard-dummy-password"

func (a *authService) compareWithDummyHash(ctx context.Context, password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.credentials.HashPassword(ctx, dummyPassword)
		if err != nil {
			logger.FromContext(ctx).Err(err).Msg("error hashing dummy password")
			return
		}
		a.dummyHash = hash
	})

	if a.dummyHash != "" {
		a.credentials.ComparePassword(ctx, password, a.dummyHash)
	}
}

// CreateToken issues a signed token identifying user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := a.credentials.GenerateToken(ctx, models.TokenPayload{UserID: user.UserID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.UserID).Msg("token creation failed")
		return "", apperror.Internal(err)
	}

	return token, nil
}

// Me returns the account of the authenticated user.
func (a *authService) Me(ctx context.Context, userID string) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, apperror.Wrap(http.StatusNotFound, MessageUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, apperror.Internal(fmt.Errorf("user search by id failed: %w", err))
	}

	return user, nil
}
