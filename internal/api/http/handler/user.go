package handler

import (
	"net/http"

	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
)

// User handles HTTP endpoints for the authenticated user.
type User struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me returns the identity resolved from the presented access token.
func (h *User) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	writeJSON(w, http.StatusOK, "ok", userResponse{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Role:     string(user.Role),
	})
}
