package model

import (
	"context"
	"time"
)

// SessionStore persists the single current refresh token per user, keyed by
// the token subject, with an expiring TTL. It is the source of truth for
// whether a refresh token is still current: a structurally valid token that
// does not equal the stored value has been superseded.
//
// Rotate replaces the stored value only when it equals expected, preserving
// the remaining TTL, as one atomic step. It returns ErrNotFound when the
// record is absent or already lapsed and ErrRefreshMismatch when the stored
// value differs from expected.
type SessionStore interface {
	Get(ctx context.Context, subject string) (string, error)
	Set(ctx context.Context, subject, token string, ttl time.Duration) error
	TTL(ctx context.Context, subject string) (time.Duration, error)
	Rotate(ctx context.Context, subject, expected, next string) error
}
