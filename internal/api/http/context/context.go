package context

import (
	"context"

	"github.com/hyeonju-dev/auth-server/internal/model"
)

type contextKey int

// userKey is the context key the authenticated user is stored under.
const userKey contextKey = 0

// Manager moves the authenticated user in and out of the request context.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a context carrying the authenticated user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.AuthUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the authenticated user from the context.
// The boolean reports whether a user was present.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.AuthUser, bool) {
	user, ok := ctx.Value(userKey).(model.AuthUser)
	return user, ok
}
