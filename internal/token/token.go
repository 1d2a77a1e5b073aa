// Package token mints and verifies the bearer tokens that gate the expense API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed payload, wrong signing method, or expiry.
var ErrInvalidToken = errors.New("invalid token")

// Manager mints and verifies signed bearer tokens bound to a user ID.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager constructs a Manager. secret is the server-held signing key,
// ttl bounds the lifetime of minted tokens.
func NewManager(secret []byte, ttl time.Duration) *Manager {
	return &Manager{secret: secret, ttl: ttl}
}

// Mint issues a signed token carrying the user's identifier.
func (m *Manager) Mint(userID string) (string, error) {
	now := time.Now()
	tok := jwt.New(jwt.SigningMethodHS256)

	claims := tok.Claims.(jwt.MapClaims)
	claims["uid"] = userID
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(m.ttl).Unix()

	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and structure of tokenString and returns
// the embedded user identifier. Any failure yields ErrInvalidToken.
func (m *Manager) Verify(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", ErrInvalidToken
	}
	return uid, nil
}
