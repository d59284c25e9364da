package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
)

// Authenticate validates access tokens and injects the user into context.
type Authenticate struct {
	codec          model.TokenCodec
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(codec model.TokenCodec, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{codec: codec, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the access token and
// passes the request on with the user in context. Any failure answers 401.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.authenticateUser(r.Header.Get("Authorization"))
		if err != nil {
			m.logger.Info("Authenticate middleware: rejected request",
				"path", r.URL.Path,
				"error", err.Error())
			unauthorized(w, err)
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateUser(header string) (model.AuthUser, error) {
	tokenString, err := m.codec.StripScheme(header)
	if err != nil {
		return model.AuthUser{}, err
	}

	claims, err := m.codec.Decode(tokenString)
	if err != nil {
		return model.AuthUser{}, err
	}

	if claims.Category != model.CategoryAccess {
		return model.AuthUser{}, model.ErrMalformedToken
	}

	if m.codec.IsExpired(claims) {
		return model.AuthUser{}, model.ErrMalformedToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return model.AuthUser{}, model.ErrMalformedToken
	}

	return model.AuthUser{
		ID:       userID,
		Username: claims.Username,
		Nickname: claims.Nickname,
		Role:     claims.Role,
	}, nil
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"statusCode": http.StatusUnauthorized,
		"message":    err.Error(),
	})
}
