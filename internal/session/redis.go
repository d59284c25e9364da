package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hyeonju-dev/auth-server/internal/model"
)

// refreshKeyPrefix is the store key layout: one record per user, keyed by
// the token subject.
const refreshKeyPrefix = "Refresh_"

const (
	rotateStatusNotFound int64 = 0
	rotateStatusMismatch int64 = 1
	rotateStatusRotated  int64 = 2
)

// rotateScript replaces the stored refresh token only when the current value
// equals the presented one, keeping the remaining TTL. A record without a
// positive TTL counts as already lapsed.
var rotateScript = redis.NewScript(`
local v = redis.call("GET", KEYS[1])
if not v then
  return 0
end
if v ~= ARGV[1] then
  return 1
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl <= 0 then
  return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ttl)
return 2
`)

// Store implements model.SessionStore on Redis. The key space is partitioned
// by user, so unrelated users never contend.
type Store struct {
	rdb *redis.Client
}

// NewStore creates a session store backed by the given Redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

var _ model.SessionStore = (*Store)(nil)

func key(subject string) string {
	return refreshKeyPrefix + subject
}

// Get returns the current refresh token stored for the subject.
func (s *Store) Get(ctx context.Context, subject string) (string, error) {
	value, err := s.rdb.Get(ctx, key(subject)).Result()
	if errors.Is(err, redis.Nil) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session record: %w", err)
	}
	return value, nil
}

// Set stores the refresh token for the subject with the given TTL,
// overwriting any prior record.
func (s *Store) Set(ctx context.Context, subject, token string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, key(subject), token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session record: %w", err)
	}
	return nil
}

// TTL returns the remaining lifetime of the subject's record. A missing key
// or one without a positive TTL reports model.ErrNotFound.
func (s *Store) TTL(ctx context.Context, subject string) (time.Duration, error) {
	ttl, err := s.rdb.PTTL(ctx, key(subject)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read session ttl: %w", err)
	}
	if ttl <= 0 {
		return 0, model.ErrNotFound
	}
	return ttl, nil
}

// Rotate atomically swaps the stored token for next when it currently equals
// expected, preserving the remaining TTL.
func (s *Store) Rotate(ctx context.Context, subject, expected, next string) error {
	status, err := rotateScript.Run(ctx, s.rdb, []string{key(subject)}, expected, next).Int64()
	if err != nil {
		return fmt.Errorf("failed to rotate session record: %w", err)
	}

	switch status {
	case rotateStatusRotated:
		return nil
	case rotateStatusMismatch:
		return model.ErrRefreshMismatch
	default:
		return model.ErrNotFound
	}
}
