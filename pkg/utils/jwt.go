package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// VisitorClaims identify one browser across requests. They carry no user
// identity; the subject is a random visitor id.
type VisitorClaims struct {
	jwt.RegisteredClaims
}

type VisitorTokens struct {
	key []byte
	ttl time.Duration
}

func NewVisitorTokens(secret string, ttl time.Duration) *VisitorTokens {
	return &VisitorTokens{key: []byte(secret), ttl: ttl}
}

func (t *VisitorTokens) CreateToken(visitorID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &VisitorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   visitorID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.key)
}

// ValidateToken returns the visitor id carried by tokenString.
func (t *VisitorTokens) ValidateToken(tokenString string) (uuid.UUID, error) {
	claims := &VisitorClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return t.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidVisitor, err)
	}

	visitorID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidVisitor, err)
	}
	return visitorID, nil
}

func (t *VisitorTokens) TTL() time.Duration {
	return t.ttl
}
