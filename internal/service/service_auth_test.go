package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/apperror"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/mock"
	"github.com/MKhiriev/go-auth-guard/internal/store"
	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type authMocks struct {
	repo        *mock.MockUserRepository
	credentials *mock.MockCredentialService
	ids         *mock.MockIDGenerator
}

func newTestAuthService(t *testing.T) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		repo:        mock.NewMockUserRepository(ctrl),
		credentials: mock.NewMockCredentialService(ctrl),
		ids:         mock.NewMockIDGenerator(ctrl),
	}

	return NewAuthService(m.repo, m.credentials, m.ids, logger.Nop()), m
}

func requireAppError(t *testing.T, err error, kind apperror.Kind, status int) *apperror.Error {
	t.Helper()
	appErr, ok := apperror.As(err)
	require.True(t, ok, "expected *apperror.Error, got %T", err)
	assert.Equal(t, kind, appErr.Kind())
	assert.Equal(t, status, appErr.Status())
	return appErr
}

var testCredentials = models.Credentials{Login: "alice", Password: "password-1"}

// expectDummyCompare registers the bcrypt work done for an unknown login.
func expectDummyCompare(m authMocks) {
	m.credentials.EXPECT().HashPassword(gomock.Any(), dummyPassword).Return("dummy-hash", nil).MaxTimes(1)
	m.credentials.EXPECT().ComparePassword(gomock.Any(), "password-1", "dummy-hash").Return(false)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	gomock.InOrder(
		m.credentials.EXPECT().HashPassword(ctx, "password-1").Return("hashed", nil),
		m.ids.EXPECT().Generate().Return("user-1"),
		m.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "user-1", u.UserID)
				assert.Equal(t, "alice", u.Login)
				assert.Equal(t, "hashed", u.PasswordHash)
				assert.WithinDuration(t, time.Now(), u.CreatedAt, time.Minute)
				return u, nil
			},
		),
	)

	user, err := svc.RegisterUser(ctx, testCredentials)
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
	assert.Equal(t, "alice", user.Login)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().HashPassword(ctx, gomock.Any()).Return("hashed", nil)
	m.ids.EXPECT().Generate().Return("user-1")
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(ctx, testCredentials)

	appErr := requireAppError(t, err, apperror.KindDomain, http.StatusConflict)
	assert.Equal(t, MessageLoginAlreadyExists, appErr.Message())
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestAuthService_RegisterUser_StorageFailureIsUnclassified(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().HashPassword(ctx, gomock.Any()).Return("hashed", nil)
	m.ids.EXPECT().Generate().Return("user-1")
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, errors.New("connection reset"))

	_, err := svc.RegisterUser(ctx, testCredentials)

	requireAppError(t, err, apperror.KindUnclassified, http.StatusInternalServerError)
}

func TestAuthService_RegisterUser_PasswordTooLong(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().HashPassword(ctx, gomock.Any()).
		Return("", fmt.Errorf("%w: %w", ErrHashingPassword, bcrypt.ErrPasswordTooLong))

	_, err := svc.RegisterUser(ctx, testCredentials)

	appErr := requireAppError(t, err, apperror.KindValidation, http.StatusBadRequest)
	assert.Equal(t, []string{MessagePasswordTooLong}, appErr.Messages())
}

func TestAuthService_RegisterUser_HashFailureIsUnclassified(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().HashPassword(ctx, gomock.Any()).Return("", ErrHashingPassword)

	_, err := svc.RegisterUser(ctx, testCredentials)

	requireAppError(t, err, apperror.KindUnclassified, http.StatusInternalServerError)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: "user-1", Login: "alice", PasswordHash: "hashed"}

	tests := []struct {
		name       string
		setup      func(m authMocks)
		wantUser   models.User
		wantKind   apperror.Kind
		wantStatus int
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
				m.credentials.EXPECT().ComparePassword(gomock.Any(), "password-1", "hashed").Return(true)
			},
			wantUser: stored,
		},
		{
			name: "unknown login",
			setup: func(m authMocks) {
				m.repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, store.ErrNoUserWasFound)
				expectDummyCompare(m)
			},
			wantKind:   apperror.KindDomain,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			setup: func(m authMocks) {
				m.repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
				m.credentials.EXPECT().ComparePassword(gomock.Any(), "password-1", "hashed").Return(false)
			},
			wantKind:   apperror.KindDomain,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "storage failure",
			setup: func(m authMocks) {
				m.repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, errors.New("boom"))
			},
			wantKind:   apperror.KindUnclassified,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t)
			tt.setup(m)

			user, err := svc.Login(context.Background(), testCredentials)
			if tt.wantStatus == 0 {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, user)
				return
			}

			requireAppError(t, err, tt.wantKind, tt.wantStatus)
			assert.Empty(t, user.UserID)
		})
	}
}

func TestAuthService_Login_SameMessageForUnknownLoginAndWrongPassword(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)
	expectDummyCompare(m)
	_, unknownErr := svc.Login(ctx, testCredentials)

	m.repo.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{UserID: "1", PasswordHash: "h"}, nil)
	m.credentials.EXPECT().ComparePassword(ctx, "password-1", "h").Return(false)
	_, wrongErr := svc.Login(ctx, testCredentials)

	assert.Equal(t, apperror.Normalize(unknownErr), apperror.Normalize(wrongErr))
}

func TestAuthService_Login_UnknownLoginPaysPasswordCompare(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound).Times(2)
	m.credentials.EXPECT().HashPassword(gomock.Any(), dummyPassword).Return("dummy-hash", nil).Times(1)
	m.credentials.EXPECT().ComparePassword(gomock.Any(), "password-1", "dummy-hash").Return(false).Times(2)

	for range 2 {
		_, err := svc.Login(ctx, testCredentials)
		requireAppError(t, err, apperror.KindDomain, http.StatusUnauthorized)
	}
}

func TestAuthService_Login_DummyHashFailureStillRejects(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByLogin(ctx, "alice").Return(models.User{}, store.ErrNoUserWasFound)
	m.credentials.EXPECT().HashPassword(gomock.Any(), dummyPassword).Return("", ErrHashingPassword)

	_, err := svc.Login(ctx, testCredentials)
	requireAppError(t, err, apperror.KindDomain, http.StatusUnauthorized)
}

// ── CreateToken ──────────────────────────────────────────────────────────────

func TestAuthService_CreateToken(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().GenerateToken(ctx, models.TokenPayload{UserID: "user-1"}).Return("signed", nil)

	token, err := svc.CreateToken(ctx, models.User{UserID: "user-1", Login: "alice"})
	require.NoError(t, err)
	assert.Equal(t, "signed", token)
}

func TestAuthService_CreateToken_Failure(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.credentials.EXPECT().GenerateToken(ctx, gomock.Any()).Return("", ErrTokenCreationFailed)

	token, err := svc.CreateToken(ctx, models.User{UserID: "user-1"})
	requireAppError(t, err, apperror.KindUnclassified, http.StatusInternalServerError)
	assert.Empty(t, token)
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestAuthService_Me(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()
	stored := models.User{UserID: "user-1", Login: "alice"}

	m.repo.EXPECT().FindUserByID(ctx, "user-1").Return(stored, nil)

	user, err := svc.Me(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Me_NotFound(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByID(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Me(ctx, "ghost")
	appErr := requireAppError(t, err, apperror.KindDomain, http.StatusNotFound)
	assert.Equal(t, MessageUserNotFound, appErr.Message())
}

func TestAuthService_Me_StorageFailure(t *testing.T) {
	svc, m := newTestAuthService(t)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByID(ctx, "user-1").Return(models.User{}, errors.New("boom"))

	_, err := svc.Me(ctx, "user-1")
	requireAppError(t, err, apperror.KindUnclassified, http.StatusInternalServerError)
}
