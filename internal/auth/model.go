package auth

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidArgument is returned for malformed caller input, before any
// cryptographic work is done.
var ErrInvalidArgument = errors.New("auth: invalid argument")

// Claims is the token claim set. The subject is duplicated under the
// registered "sub" claim and "unique_name", and the role under "role" and
// "user_role", so that consumers reading either convention resolve the same
// identity.
type Claims struct {
	UniqueName string `json:"unique_name"`
	Role       string `json:"role"`
	UserRole   string `json:"user_role"`
	jwt.RegisteredClaims
}

type Service interface {
	// GenerateToken issues a signed token for the given subject and role.
	GenerateToken(username, role string) (string, error)

	// ValidateToken reports whether the token verifies against the
	// configured secret, issuer, audience, validity window and algorithm.
	// It never returns an error, whatever the input looks like.
	ValidateToken(tokenString string) bool

	// ParseClaims performs the same verification as ValidateToken and
	// additionally returns the claim set for authorization decisions.
	ParseClaims(tokenString string) (*Claims, bool)
}
