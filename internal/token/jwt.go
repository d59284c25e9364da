package token

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hyeonju-dev/auth-server/internal/model"
)

// BearerScheme is the literal prefix carried by access tokens in transport
// and expected on the reissue header value.
const BearerScheme = "Bearer "

const (
	accessTTL  = 4 * time.Hour
	refreshTTL = 24 * time.Hour
)

// Claims is the wire representation of token claims. Claim names must
// round-trip exactly for interoperability.
type Claims struct {
	jwt.RegisteredClaims
	Category string `json:"category"`
	Nickname string `json:"nickname,omitempty"`
	Username string `json:"userName,omitempty"`
	Role     string `json:"userRole,omitempty"`
}

// Codec implements model.TokenCodec backed by symmetric HMAC. The signing
// key is fixed at construction and never mutated.
type Codec struct {
	key []byte
}

// NewCodec creates a codec signing with the given symmetric key.
func NewCodec(key []byte) *Codec {
	return &Codec{key: key}
}

var _ model.TokenCodec = (*Codec)(nil)

// IssueAccess creates a short-lived access token carrying the user's profile
// claims. The returned string includes the bearer scheme marker.
func (c *Codec) IssueAccess(userID int64, nickname, username string, role model.Role) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
		},
		Category: string(model.CategoryAccess),
		Nickname: nickname,
		Username: username,
		Role:     string(role),
	})

	signed, err := t.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return BearerScheme + signed, nil
}

// IssueRefresh creates a longer-lived refresh token carrying only the
// subject. No scheme marker.
func (c *Codec) IssueRefresh(userID int64) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(refreshTTL)),
		},
		Category: string(model.CategoryRefresh),
	})

	signed, err := t.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return signed, nil
}

// Decode verifies the signature and structure of a token and returns its
// claims. Expiry is deliberately not validated here; callers check it with
// IsExpired so an expired-but-genuine token is distinguishable from a
// tampered one.
func (c *Codec) Decode(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	t, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return c.key, nil
	})
	if err != nil {
		return model.TokenClaims{}, fmt.Errorf("%w: %s", model.ErrMalformedToken, err)
	}
	if !t.Valid {
		return model.TokenClaims{}, model.ErrMalformedToken
	}

	category := model.TokenCategory(claims.Category)
	if category != model.CategoryAccess && category != model.CategoryRefresh {
		return model.TokenClaims{}, fmt.Errorf("%w: unknown category %q", model.ErrMalformedToken, claims.Category)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return model.TokenClaims{}, fmt.Errorf("%w: missing issued-at or expiry", model.ErrMalformedToken)
	}

	return model.TokenClaims{
		Subject:   claims.Subject,
		Category:  category,
		Nickname:  claims.Nickname,
		Username:  claims.Username,
		Role:      model.Role(claims.Role),
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IsExpired reports whether the claims' expiry has passed.
func (c *Codec) IsExpired(claims model.TokenClaims) bool {
	return claims.ExpiresAt.Before(time.Now())
}

// StripScheme removes the bearer scheme marker from a raw header value. A
// blank value or one without the marker means no token was presented.
func (c *Codec) StripScheme(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" || !strings.HasPrefix(raw, BearerScheme) {
		return "", model.ErrMissingToken
	}
	return strings.TrimPrefix(raw, BearerScheme), nil
}
