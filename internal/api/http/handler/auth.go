package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/service"
)

// RefreshTokenHeader is the request header the reissue endpoint reads the
// refresh token from. The value carries the "Bearer " scheme.
const RefreshTokenHeader = "Refresh-Token"

// AuthService defines login and token reissue operations.
type AuthService interface {
	Login(ctx context.Context, username, password string) (model.TokenPair, error)
	Reissue(ctx context.Context, raw string) (model.TokenPair, error)
}

// SignupService defines user registration.
type SignupService interface {
	Signup(ctx context.Context, in service.SignupInput) (model.User, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService   AuthService
	signupService SignupService
	logger        *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, signupService SignupService, logger *logger.Logger) *Auth {
	return &Auth{
		authService:   authService,
		signupService: signupService,
		logger:        logger,
	}
}

type signupRequest struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	Nickname   string `json:"nickname"`
	Role       string `json:"role"`
	AdminToken string `json:"adminToken"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

// Signup registers a new user.
func (h *Auth) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"username", req.Username)

	role := model.Role(req.Role)
	if req.Role == "" {
		role = model.RoleStandard
	}
	if !role.Valid() {
		writeJSON(w, http.StatusBadRequest, "unknown role", nil)
		return
	}

	user, err := h.signupService.Signup(r.Context(), service.SignupInput{
		Username:   req.Username,
		Password:   req.Password,
		Nickname:   req.Nickname,
		Role:       role,
		AdminToken: req.AdminToken,
	})
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"username", user.Username,
		"user_id", user.ID)

	writeJSON(w, http.StatusCreated, "user created", userResponse{
		ID:       user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Role:     string(user.Role),
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login verifies credentials and returns a fresh token pair.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	h.logger.Debug("Auth handler: processing login request",
		"username", req.Username)

	pair, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: login failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: login completed",
		"username", req.Username)

	writeJSON(w, http.StatusOK, "login successful", tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Reissue rotates the refresh token presented in the Refresh-Token header
// and returns a new token pair.
func (h *Auth) Reissue(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Auth handler: processing reissue request")

	pair, err := h.authService.Reissue(r.Context(), r.Header.Get(RefreshTokenHeader))
	if err != nil {
		h.logger.Error("Auth handler: reissue failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	h.logger.Info("Auth handler: reissue completed")

	writeJSON(w, http.StatusOK, "token pair reissued", tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
