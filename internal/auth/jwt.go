// Package auth signs and verifies the HS256 bearer tokens handed out at
// register and login.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

// clockSkew is tolerated on exp/iat checks.
const clockSkew = 30 * time.Second

var (
	// ErrEmptyToken is returned when no token was supplied.
	ErrEmptyToken = errors.New("token is empty")
	// ErrUnknownRole is returned for tokens carrying a role the API does not know.
	ErrUnknownRole = errors.New("unknown role")
)

// JWTManager issues and validates the bearer tokens used by the API.
// Tokens are stateless; logging out is a client-side concern.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
	parser    *jwt.Parser
}

// NewJWTManager builds a manager for one issuer. The config layer enforces a
// secret of at least 32 characters.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	m := &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

type accessClaims struct {
	jwt.RegisteredClaims
	Role domain.UserRole `json:"role"`
}

// GenerateAccessToken signs a token for userID carrying role.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role string) (string, error) {
	r := domain.UserRole(role)
	if !r.IsValid() {
		return "", fmt.Errorf("generate token: %w: %q", ErrUnknownRole, role)
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: r,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken returns the subject and role of a valid token.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return uuid.Nil, "", ErrEmptyToken
	}

	var claims accessClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject: %w", err)
	}
	if !claims.Role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("validate token: %w: %q", ErrUnknownRole, claims.Role)
	}

	return userID, claims.Role.String(), nil
}

// TTL returns the lifetime of issued tokens.
func (m *JWTManager) TTL() time.Duration { return m.accessTTL }
