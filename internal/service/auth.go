package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hyeonju-dev/auth-server/internal/logger"
	"github.com/hyeonju-dev/auth-server/internal/model"
)

// NOTE: Keep this in sync with the token codec's refresh lifetime. It is the
// TTL written on login; reissue never writes a fresh one, it carries the
// remaining TTL forward.
const refreshTTL = 24 * time.Hour

// Auth orchestrates login and token reissue against the user store, the
// session store and the token codec.
type Auth struct {
	users        model.UserStore
	sessions     model.SessionStore
	codec        model.TokenCodec
	hasher       model.PasswordHasher
	atomicRotate bool
	logger       *logger.Logger
}

// NewAuth creates the authentication service. With atomicRotate the reissue
// flow swaps the stored refresh token in a single store-side step instead of
// the read-compare-write sequence.
func NewAuth(
	users model.UserStore,
	sessions model.SessionStore,
	codec model.TokenCodec,
	hasher model.PasswordHasher,
	atomicRotate bool,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		users:        users,
		sessions:     sessions,
		codec:        codec,
		hasher:       hasher,
		atomicRotate: atomicRotate,
		logger:       logger,
	}
}

// Login verifies credentials and issues a fresh token pair. The refresh
// token is stored with the full lifetime, silently superseding any session
// the user already had.
func (a *Auth) Login(ctx context.Context, username, password string) (model.TokenPair, error) {
	a.logger.Debug("Auth service: processing login",
		"username", username)

	user, err := a.users.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrUserNotFound
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		a.logger.Info("Auth service: password mismatch",
			"username", username)
		return model.TokenPair{}, model.ErrInvalidCredentials
	}

	pair, err := a.issuePair(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	subject := strconv.FormatInt(user.ID, 10)
	if err := a.sessions.Set(ctx, subject, pair.RefreshToken, refreshTTL); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist refresh token: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"username", username,
		"user_id", user.ID)

	return pair, nil
}

// Reissue validates a presented refresh token and rotates the session.
//
// The checks run in a fixed order, each with its own user-facing failure:
// presence, scheme, category, token expiry, stored record presence, exact
// equality with the stored value, subject resolution, remaining TTL. The new
// refresh token is stored with the TTL that remained on the old record, so a
// session can never outlive its original lifetime no matter how often it is
// rotated.
func (a *Auth) Reissue(ctx context.Context, raw string) (model.TokenPair, error) {
	if strings.TrimSpace(raw) == "" {
		return model.TokenPair{}, model.ErrMissingRefreshToken
	}

	tokenString, err := a.codec.StripScheme(raw)
	if err != nil {
		return model.TokenPair{}, model.ErrInvalidTokenFormat
	}

	claims, err := a.codec.Decode(tokenString)
	if err != nil {
		return model.TokenPair{}, err
	}

	if claims.Category != model.CategoryRefresh {
		return model.TokenPair{}, model.ErrNotRefreshToken
	}

	if a.codec.IsExpired(claims) {
		return model.TokenPair{}, model.ErrExpiredRefreshToken
	}

	if a.atomicRotate {
		return a.reissueAtomic(ctx, claims, tokenString)
	}

	stored, err := a.sessions.Get(ctx, claims.Subject)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrExpiredRefreshToken
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to read session record: %w", err)
	}
	if stored == "" {
		return model.TokenPair{}, model.ErrExpiredRefreshToken
	}

	if stored != tokenString {
		a.logger.Info("Auth service: superseded refresh token presented",
			"subject", claims.Subject)
		return model.TokenPair{}, model.ErrInvalidRefreshToken
	}

	user, err := a.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	ttl, err := a.sessions.TTL(ctx, claims.Subject)
	if errors.Is(err, model.ErrNotFound) {
		return model.TokenPair{}, model.ErrExpiredRefreshToken
	}
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to read session ttl: %w", err)
	}

	pair, err := a.issuePair(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	if err := a.sessions.Set(ctx, claims.Subject, pair.RefreshToken, ttl); err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to persist rotated refresh token: %w", err)
	}

	a.logger.Info("Auth service: token pair reissued",
		"user_id", user.ID,
		"remaining_ttl_ms", ttl.Milliseconds())

	return pair, nil
}

// reissueAtomic performs the store lookup, equality check, TTL carry-forward
// and replacement as one store-side step, closing the race between two
// concurrent reissues for the same user.
func (a *Auth) reissueAtomic(ctx context.Context, claims model.TokenClaims, tokenString string) (model.TokenPair, error) {
	user, err := a.resolveSubject(ctx, claims.Subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	pair, err := a.issuePair(user)
	if err != nil {
		return model.TokenPair{}, err
	}

	err = a.sessions.Rotate(ctx, claims.Subject, tokenString, pair.RefreshToken)
	switch {
	case errors.Is(err, model.ErrNotFound):
		return model.TokenPair{}, model.ErrExpiredRefreshToken
	case errors.Is(err, model.ErrRefreshMismatch):
		a.logger.Info("Auth service: superseded refresh token presented",
			"subject", claims.Subject)
		return model.TokenPair{}, model.ErrInvalidRefreshToken
	case err != nil:
		return model.TokenPair{}, fmt.Errorf("failed to rotate session record: %w", err)
	}

	a.logger.Info("Auth service: token pair reissued",
		"user_id", user.ID)

	return pair, nil
}

func (a *Auth) resolveSubject(ctx context.Context, subject string) (model.User, error) {
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return model.User{}, model.ErrSessionInvalidated
	}

	user, err := a.users.GetByID(ctx, userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, model.ErrSessionInvalidated
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

func (a *Auth) issuePair(user model.User) (model.TokenPair, error) {
	access, err := a.codec.IssueAccess(user.ID, user.Nickname, user.Username, user.Role)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	refresh, err := a.codec.IssueRefresh(user.ID)
	if err != nil {
		return model.TokenPair{}, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
