package user

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
)

// Claims mirrors the authorization claims the backend puts in its JWTs.
// The client never verifies the signature (it has no key); it only reads
// claims for display and for the local expiry check.
type Claims struct {
	jwt.StandardClaims
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// ParseClaims decodes the claims of a bearer token without verification.
func ParseClaims(token string) (*Claims, error) {
	claims := new(Claims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parsing token claims")
	}
	return claims, nil
}

// Expired reports whether the token carrying these claims is past its expiry.
// Tokens without an expiry never expire client-side.
func (c *Claims) Expired() bool {
	if c.ExpiresAt == 0 {
		return false
	}
	return time.Now().Unix() >= c.ExpiresAt
}
