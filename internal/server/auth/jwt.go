// Package auth implements the stateless bearer-token codec: signed,
// time-bound JWTs whose subject is the user ID.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"orbit/internal/common"
)

// Claims is the claim set carried by Orbit tokens. Only registered claims
// are used; the subject holds the user ID.
type Claims struct {
	jwt.RegisteredClaims
}

// Manager signs and validates tokens under a single process-wide secret.
// It is immutable after construction and safe for concurrent use.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
	alg    string
}

// NewManager returns a Manager signing with the given HMAC algorithm
// (HS256/HS384/HS512). Non-HMAC algorithms are rejected: asymmetric and
// "none" methods must never be accepted for tokens we also issue.
func NewManager(secret string, algorithm string) (*Manager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &Manager{secret: []byte(secret), method: method, alg: algorithm}, nil
}

// Generate issues a signed token whose subject is userID, valid for ttl
// from now.
func (m *Manager) Generate(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(m.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})

	return token.SignedString(m.secret)
}

// Parse verifies the signature and expiry of tokenString and returns its
// subject. Expired tokens yield common.ErrTokenExpired; any other defect
// (bad signature, malformed payload, missing subject, foreign algorithm)
// yields common.ErrInvalidToken. The HTTP boundary collapses both into
// the same 401 response; the distinction is for internal logs.
func (m *Manager) Parse(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.alg}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
