package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-guard/models"
)

// Columns of the users table, in scan order.
const (
	columnUserID       = "user_id"
	columnLogin        = "login"
	columnPasswordHash = "password_hash"
	columnCreatedAt    = "created_at"
)

var userColumns = []string{columnUserID, columnLogin, columnPasswordHash, columnCreatedAt}

// buildCreateUserQuery renders the INSERT of a fully populated user.
func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.UserID, user.Login, user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildFindUserQuery renders a SELECT of a single user filtered by column.
func buildFindUserQuery(b sq.StatementBuilderType, column, value string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
