package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/password"
)

// SignupInput carries a registration request. AdminToken is only consulted
// when the administrator role is requested.
type SignupInput struct {
	Username   string
	Password   string
	Nickname   string
	Role       model.Role
	AdminToken string
}

// Signup registers new users: it enforces the password policy, gates the
// administrator role behind the configured admin token and guarantees
// nickname uniqueness.
type Signup struct {
	users      model.UserStore
	hasher     model.PasswordHasher
	adminToken string
	logger     *logger.Logger
}

// NewSignup creates the signup service.
func NewSignup(users model.UserStore, hasher model.PasswordHasher, adminToken string, logger *logger.Logger) *Signup {
	return &Signup{
		users:      users,
		hasher:     hasher,
		adminToken: adminToken,
		logger:     logger,
	}
}

// Signup creates a user from the given input.
func (s *Signup) Signup(ctx context.Context, in SignupInput) (model.User, error) {
	s.logger.Debug("Signup service: processing registration",
		"username", in.Username)

	if err := password.ValidatePolicy(in.Password); err != nil {
		return model.User{}, err
	}

	role, err := s.resolveRole(in)
	if err != nil {
		return model.User{}, err
	}

	exists, err := s.users.ExistsByNickname(ctx, in.Nickname)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to check nickname: %w", err)
	}
	if exists {
		return model.User{}, model.ErrDuplicateNickname
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now()
	user, err := s.users.Create(ctx, model.User{
		Username:     in.Username,
		PasswordHash: hash,
		Nickname:     in.Nickname,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Signup service: registration completed",
		"username", user.Username,
		"user_id", user.ID,
		"role", user.Role)

	return user, nil
}

// resolveRole grants the administrator role only when the request carries
// the configured admin token; everything else registers as standard.
func (s *Signup) resolveRole(in SignupInput) (model.Role, error) {
	if in.Role != model.RoleAdministrator {
		return model.RoleStandard, nil
	}
	if in.AdminToken == "" || in.AdminToken != s.adminToken {
		return "", model.ErrAdminTokenForbidden
	}
	return model.RoleAdministrator, nil
}
