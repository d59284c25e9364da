package model

import "errors"

// ErrNotFound is returned by stores when a record is absent. Services
// translate it into the user-facing failure appropriate for the flow.
var ErrNotFound = errors.New("not found")

// Codec-level failures.
var (
	ErrMissingToken   = errors.New("token missing")
	ErrMalformedToken = errors.New("malformed token")
)

// Login failures.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Reissue failures. Each one is surfaced to the caller as a distinct
// outcome, never collapsed into a generic error.
var (
	ErrMissingRefreshToken = errors.New("refresh token required")
	ErrInvalidTokenFormat  = errors.New("invalid token format")
	ErrNotRefreshToken     = errors.New("not a refresh token")
	ErrExpiredRefreshToken = errors.New("refresh token expired")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrSessionInvalidated  = errors.New("session invalidated, log in again")
)

// ErrRefreshMismatch is the store-level signal that an atomic rotate lost
// against a different stored value.
var ErrRefreshMismatch = errors.New("stored refresh token mismatch")

// Signup failures.
var (
	ErrDuplicateNickname   = errors.New("duplicate nickname")
	ErrWeakPassword        = errors.New("password does not meet complexity requirements")
	ErrAdminTokenForbidden = errors.New("admin token invalid")
)
