package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyeonju-dev/auth-server/internal/mocks"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/service"
	"github.com/hyeonju-dev/auth-server/internal/testutil"
)

type authMocks struct {
	users    *mocks.UserStore
	sessions *mocks.SessionStore
	codec    *mocks.TokenCodec
	hasher   *mocks.PasswordHasher
}

func newAuthTest(t *testing.T, atomicRotate bool) (*service.Auth, authMocks) {
	t.Helper()
	m := authMocks{
		users:    mocks.NewUserStore(t),
		sessions: mocks.NewSessionStore(t),
		codec:    mocks.NewTokenCodec(t),
		hasher:   mocks.NewPasswordHasher(t),
	}
	svc := service.NewAuth(m.users, m.sessions, m.codec, m.hasher, atomicRotate, testutil.MakeNoopLogger())
	return svc, m
}

func testUser() model.User {
	return model.User{
		ID:           42,
		Username:     "alice",
		PasswordHash: "$2a$10$hash",
		Nickname:     "ally",
		Role:         model.RoleStandard,
	}
}

func refreshClaims(expiresAt time.Time) model.TokenClaims {
	return model.TokenClaims{
		Subject:   "42",
		Category:  model.CategoryRefresh,
		IssuedAt:  time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)
	user := testUser()

	m.users.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
	m.hasher.On("Verify", "Secret1!", user.PasswordHash).Return(true).Once()
	m.codec.On("IssueAccess", int64(42), "ally", "alice", model.RoleStandard).Return("Bearer access-1", nil).Once()
	m.codec.On("IssueRefresh", int64(42)).Return("refresh-1", nil).Once()
	m.sessions.On("Set", ctx, "42", "refresh-1", 24*time.Hour).Return(nil).Once()

	pair, err := svc.Login(ctx, "alice", "Secret1!")
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", pair.AccessToken)
	assert.Equal(t, "refresh-1", pair.RefreshToken)
}

func TestAuth_Login_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)

	m.users.On("GetByUsername", ctx, "ghost").Return(model.User{}, model.ErrNotFound).Once()

	_, err := svc.Login(ctx, "ghost", "Secret1!")
	require.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)
	user := testUser()

	m.users.On("GetByUsername", ctx, "alice").Return(user, nil).Once()
	m.hasher.On("Verify", "wrong", user.PasswordHash).Return(false).Once()

	_, err := svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
	// no tokens minted, no session written: asserted by mock expectations
}

func TestAuth_Reissue_MissingInput(t *testing.T) {
	svc, _ := newAuthTest(t, false)

	for _, raw := range []string{"", "   "} {
		_, err := svc.Reissue(context.Background(), raw)
		require.ErrorIs(t, err, model.ErrMissingRefreshToken)
	}
}

func TestAuth_Reissue_BadScheme(t *testing.T) {
	svc, m := newAuthTest(t, false)

	m.codec.On("StripScheme", "no-scheme-here").Return("", model.ErrMissingToken).Once()

	_, err := svc.Reissue(context.Background(), "no-scheme-here")
	require.ErrorIs(t, err, model.ErrInvalidTokenFormat)
}

func TestAuth_Reissue_MalformedToken(t *testing.T) {
	svc, m := newAuthTest(t, false)

	m.codec.On("StripScheme", "Bearer junk").Return("junk", nil).Once()
	m.codec.On("Decode", "junk").Return(model.TokenClaims{}, model.ErrMalformedToken).Once()

	_, err := svc.Reissue(context.Background(), "Bearer junk")
	require.ErrorIs(t, err, model.ErrMalformedToken)
}

func TestAuth_Reissue_AccessTokenPresented(t *testing.T) {
	svc, m := newAuthTest(t, false)

	claims := model.TokenClaims{
		Subject:   "42",
		Category:  model.CategoryAccess,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	m.codec.On("StripScheme", "Bearer acc").Return("acc", nil).Once()
	m.codec.On("Decode", "acc").Return(claims, nil).Once()

	_, err := svc.Reissue(context.Background(), "Bearer acc")
	require.ErrorIs(t, err, model.ErrNotRefreshToken)
}

func TestAuth_Reissue_ExpiredToken(t *testing.T) {
	svc, m := newAuthTest(t, false)

	claims := refreshClaims(time.Now().Add(-time.Minute))
	m.codec.On("StripScheme", "Bearer old").Return("old", nil).Once()
	m.codec.On("Decode", "old").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(true).Once()

	_, err := svc.Reissue(context.Background(), "Bearer old")
	require.ErrorIs(t, err, model.ErrExpiredRefreshToken)
}

func TestAuth_Reissue_RecordEvicted(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.sessions.On("Get", ctx, "42").Return("", model.ErrNotFound).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrExpiredRefreshToken)
}

func TestAuth_Reissue_SupersededToken(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.sessions.On("Get", ctx, "42").Return("r2", nil).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrInvalidRefreshToken)
}

func TestAuth_Reissue_UserGone(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.sessions.On("Get", ctx, "42").Return("r1", nil).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(model.User{}, model.ErrNotFound).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrSessionInvalidated)
}

func TestAuth_Reissue_TTLLapsed(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)
	user := testUser()

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.sessions.On("Get", ctx, "42").Return("r1", nil).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(user, nil).Once()
	m.sessions.On("TTL", ctx, "42").Return(time.Duration(0), model.ErrNotFound).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrExpiredRefreshToken)
}

func TestAuth_Reissue_CarriesRemainingTTL(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, false)
	user := testUser()
	remaining := 93 * time.Minute

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.sessions.On("Get", ctx, "42").Return("r1", nil).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(user, nil).Once()
	m.sessions.On("TTL", ctx, "42").Return(remaining, nil).Once()
	m.codec.On("IssueAccess", int64(42), "ally", "alice", model.RoleStandard).Return("Bearer access-2", nil).Once()
	m.codec.On("IssueRefresh", int64(42)).Return("r2", nil).Once()
	// the new record keeps the remaining TTL, it is not reset to 24h
	m.sessions.On("Set", ctx, "42", "r2", remaining).Return(nil).Once()

	pair, err := svc.Reissue(ctx, "Bearer r1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-2", pair.AccessToken)
	assert.Equal(t, "r2", pair.RefreshToken)
}

func TestAuth_Reissue_Atomic(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, true)
	user := testUser()

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(user, nil).Once()
	m.codec.On("IssueAccess", int64(42), "ally", "alice", model.RoleStandard).Return("Bearer access-2", nil).Once()
	m.codec.On("IssueRefresh", int64(42)).Return("r2", nil).Once()
	m.sessions.On("Rotate", ctx, "42", "r1", "r2").Return(nil).Once()

	pair, err := svc.Reissue(ctx, "Bearer r1")
	require.NoError(t, err)
	assert.Equal(t, "r2", pair.RefreshToken)
}

func TestAuth_Reissue_Atomic_LostRace(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, true)
	user := testUser()

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(user, nil).Once()
	m.codec.On("IssueAccess", int64(42), "ally", "alice", model.RoleStandard).Return("Bearer access-2", nil).Once()
	m.codec.On("IssueRefresh", int64(42)).Return("r2", nil).Once()
	m.sessions.On("Rotate", ctx, "42", "r1", "r2").Return(model.ErrRefreshMismatch).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrInvalidRefreshToken)
}

func TestAuth_Reissue_Atomic_RecordEvicted(t *testing.T) {
	ctx := context.Background()
	svc, m := newAuthTest(t, true)
	user := testUser()

	claims := refreshClaims(time.Now().Add(time.Hour))
	m.codec.On("StripScheme", "Bearer r1").Return("r1", nil).Once()
	m.codec.On("Decode", "r1").Return(claims, nil).Once()
	m.codec.On("IsExpired", claims).Return(false).Once()
	m.users.On("GetByID", ctx, int64(42)).Return(user, nil).Once()
	m.codec.On("IssueAccess", int64(42), "ally", "alice", model.RoleStandard).Return("Bearer access-2", nil).Once()
	m.codec.On("IssueRefresh", int64(42)).Return("r2", nil).Once()
	m.sessions.On("Rotate", ctx, "42", "r1", "r2").Return(model.ErrNotFound).Once()

	_, err := svc.Reissue(ctx, "Bearer r1")
	require.ErrorIs(t, err, model.ErrExpiredRefreshToken)
}
