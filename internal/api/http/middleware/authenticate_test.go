package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontext "github.com/hyeonju-dev/auth-server/internal/api/http/context"
	"github.com/hyeonju-dev/auth-server/internal/mocks"
	"github.com/hyeonju-dev/auth-server/internal/model"
	"github.com/hyeonju-dev/auth-server/internal/testutil"
)

func accessClaims() model.TokenClaims {
	return model.TokenClaims{
		Subject:   "42",
		Category:  model.CategoryAccess,
		Nickname:  "ally",
		Username:  "alice",
		Role:      model.RoleStandard,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestAuthenticate_Handle(t *testing.T) {
	codec := mocks.NewTokenCodec(t)
	cm := apicontext.NewManager()
	mw := NewAuthenticate(codec, cm, testutil.MakeNoopLogger())

	claims := accessClaims()
	codec.On("StripScheme", "Bearer acc").Return("acc", nil).Once()
	codec.On("Decode", "acc").Return(claims, nil).Once()
	codec.On("IsExpired", claims).Return(false).Once()

	var got model.AuthUser
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = cm.GetUserFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer acc")
	rec := httptest.NewRecorder()

	mw.Handle(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "ally", got.Nickname)
	assert.Equal(t, model.RoleStandard, got.Role)
}

func TestAuthenticate_Handle_MissingHeader(t *testing.T) {
	codec := mocks.NewTokenCodec(t)
	mw := NewAuthenticate(codec, apicontext.NewManager(), testutil.MakeNoopLogger())

	codec.On("StripScheme", "").Return("", model.ErrMissingToken).Once()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	rec := httptest.NewRecorder()

	mw.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_Handle_RefreshTokenPresented(t *testing.T) {
	codec := mocks.NewTokenCodec(t)
	mw := NewAuthenticate(codec, apicontext.NewManager(), testutil.MakeNoopLogger())

	claims := accessClaims()
	claims.Category = model.CategoryRefresh
	codec.On("StripScheme", "Bearer ref").Return("ref", nil).Once()
	codec.On("Decode", "ref").Return(claims, nil).Once()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer ref")
	rec := httptest.NewRecorder()

	mw.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_Handle_ExpiredToken(t *testing.T) {
	codec := mocks.NewTokenCodec(t)
	mw := NewAuthenticate(codec, apicontext.NewManager(), testutil.MakeNoopLogger())

	claims := accessClaims()
	codec.On("StripScheme", "Bearer acc").Return("acc", nil).Once()
	codec.On("Decode", "acc").Return(claims, nil).Once()
	codec.On("IsExpired", claims).Return(true).Once()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer acc")
	rec := httptest.NewRecorder()

	mw.Handle(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
