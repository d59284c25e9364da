package model

import "time"

// TokenCategory tags a token as access or refresh. The values are carried in
// the category claim and must round-trip exactly.
type TokenCategory string

const (
	CategoryAccess  TokenCategory = "ACCESS"
	CategoryRefresh TokenCategory = "REFRESH"
)

// TokenClaims is the decoded payload of a signed token. Nickname, Username
// and Role are only set on access tokens.
type TokenClaims struct {
	Subject   string
	Category  TokenCategory
	Nickname  string
	Username  string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is returned on login and on every successful reissue.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// TokenCodec produces and consumes signed tokens. It is the only place that
// understands the wire representation of claims.
//
// Decode verifies signature and structure but not expiry: a structurally
// valid, expired token decodes fine and IsExpired reports the expiry as a
// boolean fact, so callers decide whether it is fatal.
type TokenCodec interface {
	IssueAccess(userID int64, nickname, username string, role Role) (string, error)
	IssueRefresh(userID int64) (string, error)
	Decode(token string) (TokenClaims, error)
	IsExpired(claims TokenClaims) bool
	StripScheme(raw string) (string, error)
}
