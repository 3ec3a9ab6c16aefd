package models

import "time"

// User represents an account entity used for authentication.
// PasswordHash is the bcrypt form of the password and is never serialized.
type User struct {
	// UserID is the server-assigned uuid of the account.
	UserID string `json:"userId"`

	// Login is the unique account name used at sign-in.
	Login string `json:"login"`

	// PasswordHash is the one-way hashed password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login/password pair accepted by the register and login
// endpoints. Password is plaintext and must never be persisted or logged.
type Credentials struct {
	Login    string `json:"login" validate:"required,min=3,max=64,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}
