package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a player token fails verification.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and verifies signed player tokens.
type TokenManager struct {
	secret   []byte
	duration time.Duration
}

// NewTokenManager creates a token manager signing with the given secret.
func NewTokenManager(secret string, duration time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), duration: duration}
}

type playerClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issue creates a signed token for the given user.
func (tm *TokenManager) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := playerClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.duration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify parses a token and returns the user ID and username it carries.
func (tm *TokenManager) Verify(tokenString string) (userID, username string, err error) {
	token, err := jwt.ParseWithClaims(tokenString, &playerClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return "", "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*playerClaims)
	if !ok || !token.Valid {
		return "", "", ErrInvalidToken
	}
	return claims.Subject, claims.Username, nil
}
