package models

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/jwtconsole/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the authenticated identity returned by a successful login.
type Session struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// TokenType returns Type, or "Bearer" when the server left it empty.
func (s *Session) TokenType() string {
	if s == nil || s.Type == "" {
		return common.DefaultTokenType
	}
	return s.Type
}

// TokenClaims is what the client can read out of the token for display.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

var ErrNoToken = errors.New("session has no token")

// Claims decodes the JWT payload without checking its signature. The result
// is informational only; the server remains the sole judge of validity.
func (s *Session) Claims() (TokenClaims, error) {
	var out TokenClaims
	if s == nil || s.Token == "" {
		return out, ErrNoToken
	}

	var rc jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, &rc); err != nil {
		return out, err
	}

	out.Subject = rc.Subject
	if rc.IssuedAt != nil {
		out.IssuedAt = rc.IssuedAt.Time
	}
	if rc.ExpiresAt != nil {
		out.ExpiresAt = rc.ExpiresAt.Time
	}
	return out, nil
}
