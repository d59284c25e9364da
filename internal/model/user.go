package model

import (
	"context"
	"time"
)

// Role is the closed set of user roles. The string value is what ends up in
// the userRole token claim.
type Role string

const (
	RoleStandard      Role = "standard"
	RoleAdministrator Role = "administrator"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	return r == RoleStandard || r == RoleAdministrator
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	Create(ctx context.Context, user User) (User, error)
	ExistsByNickname(ctx context.Context, nickname string) (bool, error)
}

// User represents a stored user with authentication material. Users are
// created by signup and read-only everywhere else.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Nickname     string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthUser is the identity resolved from a validated access token. It is
// built entirely from token claims, without a directory lookup.
type AuthUser struct {
	ID       int64
	Username string
	Nickname string
	Role     Role
}

// PasswordHasher hashes plaintext passwords and verifies attempts against
// stored hashes. A failed verification is a boolean, not an error.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
