package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-guard/internal/config"
	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMigratedSQLite(t *testing.T, dsn string) *DB {
	t.Helper()
	db, err := NewConnect(context.Background(), config.DB{DSN: dsn}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.Equal(t, DriverSQLite, db.Driver())
	require.NoError(t, db.Migrate())
	return db
}

func TestNewConnect_UnsupportedScheme(t *testing.T) {
	db, err := NewConnect(context.Background(), config.DB{DSN: "mysql://localhost/db"}, logger.Nop())
	assert.Nil(t, db)
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestSQLiteUserRepository_InMemory(t *testing.T) {
	db := newMigratedSQLite(t, "")
	repo := NewStorages(db, logger.Nop()).UserRepository
	ctx := context.Background()

	user := models.User{
		UserID:       "id-1",
		Login:        "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := repo.CreateUser(ctx, user)
	require.NoError(t, err)

	byLogin, err := repo.FindUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byLogin.UserID)
	assert.Equal(t, user.PasswordHash, byLogin.PasswordHash)
	assert.True(t, user.CreatedAt.Equal(byLogin.CreatedAt))

	byID, err := repo.FindUserByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Login)

	duplicate := user
	duplicate.UserID = "id-2"
	_, err = repo.CreateUser(ctx, duplicate)
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	_, err = repo.FindUserByLogin(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLiteUserRepository_FileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "users.db")
	db := newMigratedSQLite(t, path)

	_, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{
		UserID: "id-1", Login: "alice", PasswordHash: "hash", CreatedAt: time.Now().UTC(),
	})
	require.NoError(t, err)
	assert.FileExists(t, path)
}
