package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Tokens expire exactly one hour after issuance. There is no refresh and no
// server-side revocation.
const tokenTTL = time.Hour

type jwtService struct {
	secretKey []byte
	issuer    string
	audience  string
}

// NewJWTService builds the token service. Secret, issuer and audience are all
// required; a missing value is a configuration fault, reported immediately.
func NewJWTService(secret, issuer, audience string) (Service, error) {
	if secret == "" {
		return nil, errors.New("auth: jwt secret not configured")
	}
	if issuer == "" {
		return nil, errors.New("auth: jwt issuer not configured")
	}
	if audience == "" {
		return nil, errors.New("auth: jwt audience not configured")
	}
	return &jwtService{
		secretKey: []byte(secret),
		issuer:    issuer,
		audience:  audience,
	}, nil
}

func (s *jwtService) GenerateToken(username, role string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("%w: username is empty", ErrInvalidArgument)
	}
	if role == "" {
		return "", fmt.Errorf("%w: role is empty", ErrInvalidArgument)
	}

	now := time.Now()
	claims := &Claims{
		UniqueName: username,
		Role:       role,
		UserRole:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *jwtService) ValidateToken(tokenString string) bool {
	_, ok := s.ParseClaims(tokenString)
	return ok
}

// ParseClaims is total: any parse failure, signature mismatch, issuer/audience
// mismatch, lifetime violation or algorithm substitution collapses to
// (nil, false). Lifetime checks use zero clock-skew tolerance.
func (s *jwtService) ParseClaims(tokenString string) (*Claims, bool) {
	if tokenString == "" {
		return nil, false
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Validating the algorithm is HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	// The keyfunc admits any HMAC variant; pin the recorded header algorithm
	// to HS256 exactly, compared case-insensitively.
	alg, _ := token.Header["alg"].(string)
	if !strings.EqualFold(alg, jwt.SigningMethodHS256.Alg()) {
		return nil, false
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, false
	}
	return claims, true
}
